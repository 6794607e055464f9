package websites

import (
	"testing"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/appservice/armappservice/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/olusolaa/azmgmt/internal/core/domain"
)

var (
	started  = time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC)
	finished = time.Date(2024, 5, 2, 9, 3, 0, 0, time.UTC)
)

func TestMapDeployment(t *testing.T) {
	d := &armappservice.Deployment{
		Name: to.Ptr("shop/a1b2c3"),
		Properties: &armappservice.DeploymentProperties{
			Author:    to.Ptr("dev"),
			Message:   to.Ptr("Merge pull request #12"),
			Status:    to.Ptr[int32](4),
			Active:    to.Ptr(true),
			StartTime: to.Ptr(started),
			EndTime:   to.Ptr(finished),
		},
	}

	want := domain.WebsiteDeployment{
		ID: "a1b2c3", Author: "dev", Message: "Merge pull request #12",
		Status: 4, Active: true, StartTime: started, EndTime: finished,
	}
	if diff := cmp.Diff(want, mapDeployment(d)); diff != "" {
		t.Errorf("mapDeployment() mismatch (-want +got):\n%s", diff)
	}
}

func TestDeploymentID(t *testing.T) {
	assert.Equal(t, "abc", deploymentID(&armappservice.Deployment{Name: to.Ptr("abc")}))
	assert.Equal(t, "abc", deploymentID(&armappservice.Deployment{Name: to.Ptr("site/abc")}))
	assert.Equal(t, "", deploymentID(&armappservice.Deployment{}))
}

func TestMapDeploymentLog(t *testing.T) {
	tests := []struct {
		name string
		in   *armappservice.Deployment
		want []domain.WebsiteLog
	}{
		{
			name: "details split per line",
			in: &armappservice.Deployment{Properties: &armappservice.DeploymentProperties{
				Details:   to.Ptr("Fetching changes.\n\n  Running build  \nDone\n"),
				Status:    to.Ptr[int32](4),
				StartTime: to.Ptr(started),
				EndTime:   to.Ptr(finished),
			}},
			want: []domain.WebsiteLog{
				{ID: "d1-1", DeploymentID: "d1", Message: "Fetching changes.", LogTime: finished},
				{ID: "d1-2", DeploymentID: "d1", Message: "Running build", LogTime: finished},
				{ID: "d1-3", DeploymentID: "d1", Message: "Done", LogTime: finished},
			},
		},
		{
			name: "failed deployment falls back to message",
			in: &armappservice.Deployment{Properties: &armappservice.DeploymentProperties{
				Message:   to.Ptr("build failed"),
				Status:    to.Ptr[int32](3),
				StartTime: to.Ptr(started),
			}},
			want: []domain.WebsiteLog{
				{ID: "d1-1", DeploymentID: "d1", Message: "build failed", Type: 2, LogTime: started},
			},
		},
		{
			name: "no properties",
			in:   &armappservice.Deployment{},
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, mapDeploymentLog("d1", tt.in)); diff != "" {
				t.Errorf("mapDeploymentLog() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSiteResourceGroup(t *testing.T) {
	withProps := &armappservice.Site{Properties: &armappservice.SiteProperties{ResourceGroup: to.Ptr("web-rg")}}
	fromID := &armappservice.Site{ID: to.Ptr("/subscriptions/s1/resourceGroups/other-rg/providers/Microsoft.Web/sites/shop")}

	assert.Equal(t, "web-rg", siteResourceGroup(withProps))
	assert.Equal(t, "other-rg", siteResourceGroup(fromID))
	assert.Equal(t, "", siteResourceGroup(&armappservice.Site{}))
}
