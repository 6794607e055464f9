package websites

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/appservice/armappservice/v2"
)

// WebAppsAPI is the part of *armappservice.WebAppsClient this package uses.
type WebAppsAPI interface {
	NewListPager(options *armappservice.WebAppsClientListOptions) *runtime.Pager[armappservice.WebAppsClientListResponse]
	NewListDeploymentsPager(resourceGroupName string, name string, options *armappservice.WebAppsClientListDeploymentsOptions) *runtime.Pager[armappservice.WebAppsClientListDeploymentsResponse]
	ListDeploymentLog(ctx context.Context, resourceGroupName string, name string, id string, options *armappservice.WebAppsClientListDeploymentLogOptions) (armappservice.WebAppsClientListDeploymentLogResponse, error)
}
