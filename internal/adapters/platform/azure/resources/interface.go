package resources

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
)

// DeploymentsAPI is the part of *armresources.DeploymentsClient this package uses.
type DeploymentsAPI interface {
	Cancel(ctx context.Context, resourceGroupName string, deploymentName string, options *armresources.DeploymentsClientCancelOptions) (armresources.DeploymentsClientCancelResponse, error)
	NewListByResourceGroupPager(resourceGroupName string, options *armresources.DeploymentsClientListByResourceGroupOptions) *runtime.Pager[armresources.DeploymentsClientListByResourceGroupResponse]
}

// ResourceGroupsAPI is the part of *armresources.ResourceGroupsClient this package uses.
type ResourceGroupsAPI interface {
	NewListPager(options *armresources.ResourceGroupsClientListOptions) *runtime.Pager[armresources.ResourceGroupsClientListResponse]
}
