package websites

import (
	"strconv"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/appservice/armappservice/v2"

	"github.com/olusolaa/azmgmt/internal/core/domain"
	"github.com/olusolaa/azmgmt/pkg/convert"
)

// Kudu deployment status codes.
const (
	statusFailed = 3

	logTypeMessage = 0
	logTypeError   = 2
)

// deploymentID returns the short id Kudu uses; ARM names child deployments
// "<site>/<id>".
func deploymentID(d *armappservice.Deployment) string {
	name := convert.Deref(d.Name)
	if i := strings.LastIndex(name, "/"); i >= 0 {
		return name[i+1:]
	}
	return name
}

func mapDeployment(d *armappservice.Deployment) domain.WebsiteDeployment {
	out := domain.WebsiteDeployment{ID: deploymentID(d)}
	if p := d.Properties; p != nil {
		out.Author = convert.Deref(p.Author)
		out.Message = convert.Deref(p.Message)
		out.Status = convert.Deref(p.Status)
		out.Active = convert.Deref(p.Active)
		out.StartTime = convert.Deref(p.StartTime)
		out.EndTime = convert.Deref(p.EndTime)
	}
	return out
}

// mapDeploymentLog turns the log document of one deployment into log entries.
// Details holds one entry per line when present; otherwise the message is the
// only entry.
func mapDeploymentLog(deploymentID string, d *armappservice.Deployment) []domain.WebsiteLog {
	if d == nil || d.Properties == nil {
		return nil
	}
	p := d.Properties

	typ := int32(logTypeMessage)
	if convert.Deref(p.Status) == statusFailed {
		typ = logTypeError
	}
	logTime := convert.Deref(p.EndTime)
	if logTime.IsZero() {
		logTime = convert.Deref(p.StartTime)
	}

	var lines []string
	for _, l := range strings.Split(convert.Deref(p.Details), "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	if len(lines) == 0 {
		if msg := convert.Deref(p.Message); msg != "" {
			lines = []string{msg}
		}
	}

	out := make([]domain.WebsiteLog, 0, len(lines))
	for i, l := range lines {
		out = append(out, domain.WebsiteLog{
			ID:           logID(deploymentID, i),
			DeploymentID: deploymentID,
			Message:      l,
			Type:         typ,
			LogTime:      logTime,
		})
	}
	return out
}

func logID(deploymentID string, i int) string {
	return deploymentID + "-" + strconv.Itoa(i+1)
}

// siteResourceGroup reads the resource group from the site id.
func siteResourceGroup(site *armappservice.Site) string {
	if site.Properties != nil && site.Properties.ResourceGroup != nil {
		return *site.Properties.ResourceGroup
	}
	rid, err := arm.ParseResourceID(convert.Deref(site.ID))
	if err != nil {
		return ""
	}
	return rid.ResourceGroupName
}
