package websites

import (
	"context"
	"net/http"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/appservice/armappservice/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	azerrors "github.com/olusolaa/azmgmt/internal/adapters/platform/azure/errors"
	apperrors "github.com/olusolaa/azmgmt/internal/errors"
	"github.com/olusolaa/azmgmt/internal/log"
	"github.com/olusolaa/azmgmt/mocks"
)

func newTestHandler() (*SiteHandler, *mocks.MockWebAppsClient) {
	api := &mocks.MockWebAppsClient{}
	return NewSiteHandler(api, &mocks.NoopLimiter{}, &azerrors.DefaultErrorHandler{}, log.Nop()), api
}

func sitesPage(names ...string) armappservice.WebAppsClientListResponse {
	var sites []*armappservice.Site
	for _, n := range names {
		sites = append(sites, &armappservice.Site{
			ID:   to.Ptr("/subscriptions/s1/resourceGroups/rg-" + n + "/providers/Microsoft.Web/sites/" + n),
			Name: to.Ptr(n),
		})
	}
	return armappservice.WebAppsClientListResponse{WebAppCollection: armappservice.WebAppCollection{Value: sites}}
}

func TestFindSite(t *testing.T) {
	h, api := newTestHandler()
	api.On("NewListPager", mock.Anything).Return(mocks.Pager[armappservice.WebAppsClientListResponse](nil,
		sitesPage("blog"), sitesPage("Shop", "api")))

	rg, err := h.FindSite(context.Background(), "shop")

	require.NoError(t, err)
	assert.Equal(t, "rg-Shop", rg)
}

func TestFindSite_Missing(t *testing.T) {
	h, api := newTestHandler()
	api.On("NewListPager", mock.Anything).Return(mocks.Pager[armappservice.WebAppsClientListResponse](nil, sitesPage("blog")))

	_, err := h.FindSite(context.Background(), "shop")

	assert.True(t, apperrors.IsNotFound(err))
}

func TestListDeployments(t *testing.T) {
	h, api := newTestHandler()
	api.On("NewListDeploymentsPager", "rg1", "shop", mock.Anything).Return(mocks.Pager[armappservice.WebAppsClientListDeploymentsResponse](nil,
		armappservice.WebAppsClientListDeploymentsResponse{DeploymentCollection: armappservice.DeploymentCollection{
			Value: []*armappservice.Deployment{
				{Name: to.Ptr("shop/new"), Properties: &armappservice.DeploymentProperties{StartTime: to.Ptr(finished)}},
				{Name: to.Ptr("shop/old"), Properties: &armappservice.DeploymentProperties{StartTime: to.Ptr(started)}},
			},
		}}))

	got, err := h.ListDeployments(context.Background(), "rg1", "shop")

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "new", got[0].ID)
	assert.Equal(t, "old", got[1].ID)
}

func TestListDeploymentLogs(t *testing.T) {
	h, api := newTestHandler()
	api.On("ListDeploymentLog", mock.Anything, "rg1", "shop", "new", mock.Anything).Return(
		armappservice.WebAppsClientListDeploymentLogResponse{Deployment: armappservice.Deployment{
			Properties: &armappservice.DeploymentProperties{Details: to.Ptr("line one\nline two"), EndTime: to.Ptr(finished)},
		}}, nil)

	got, err := h.ListDeploymentLogs(context.Background(), "rg1", "shop", "new")

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "new-2", got[1].ID)
	assert.Equal(t, "line two", got[1].Message)
}

func TestListDeploymentLogs_NotFound(t *testing.T) {
	h, api := newTestHandler()
	api.On("ListDeploymentLog", mock.Anything, "rg1", "shop", "gone", mock.Anything).Return(
		armappservice.WebAppsClientListDeploymentLogResponse{}, &azcore.ResponseError{StatusCode: http.StatusNotFound})

	_, err := h.ListDeploymentLogs(context.Background(), "rg1", "shop", "gone")

	assert.True(t, apperrors.IsNotFound(err))
}
