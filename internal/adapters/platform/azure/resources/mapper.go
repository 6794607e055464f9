package resources

import (
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"

	"github.com/olusolaa/azmgmt/internal/core/domain"
	"github.com/olusolaa/azmgmt/pkg/convert"
)

func mapDeployment(resourceGroup string, d *armresources.DeploymentExtended) domain.Deployment {
	out := domain.Deployment{
		Name:          convert.Deref(d.Name),
		ResourceGroup: resourceGroup,
	}
	if p := d.Properties; p != nil {
		out.ProvisioningState = convert.ToEnumString(p.ProvisioningState)
		out.Timestamp = convert.Deref(p.Timestamp)
		out.CorrelationID = convert.Deref(p.CorrelationID)
	}
	return out
}
