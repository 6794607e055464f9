package network

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v4"
)

type VirtualNetworksAPI interface {
	NewListPager(resourceGroupName string, options *armnetwork.VirtualNetworksClientListOptions) *runtime.Pager[armnetwork.VirtualNetworksClientListResponse]
}

type LocalNetworkGatewaysAPI interface {
	NewListPager(resourceGroupName string, options *armnetwork.LocalNetworkGatewaysClientListOptions) *runtime.Pager[armnetwork.LocalNetworkGatewaysClientListResponse]
}

type VirtualNetworkGatewaysAPI interface {
	NewListPager(resourceGroupName string, options *armnetwork.VirtualNetworkGatewaysClientListOptions) *runtime.Pager[armnetwork.VirtualNetworkGatewaysClientListResponse]
}

type GatewayConnectionsAPI interface {
	NewListPager(resourceGroupName string, options *armnetwork.VirtualNetworkGatewayConnectionsClientListOptions) *runtime.Pager[armnetwork.VirtualNetworkGatewayConnectionsClientListResponse]
}

// GroupLister supplies the resource groups to scan when none is given.
type GroupLister interface {
	ListResourceGroups(ctx context.Context) ([]string, error)
}

// Clients bundles the SDK surfaces the handler reads from.
type Clients struct {
	VirtualNetworks VirtualNetworksAPI
	LocalGateways   LocalNetworkGatewaysAPI
	Gateways        VirtualNetworkGatewaysAPI
	Connections     GatewayConnectionsAPI
	Groups          GroupLister
}
