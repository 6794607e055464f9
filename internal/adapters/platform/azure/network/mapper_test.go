package network

import (
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v4"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/olusolaa/azmgmt/internal/core/domain"
)

const (
	vnetID   = "/subscriptions/s1/resourceGroups/rg1/providers/Microsoft.Network/virtualNetworks/vnet-a"
	gwID     = "/subscriptions/s1/resourceGroups/rg1/providers/Microsoft.Network/virtualNetworkGateways/gw-a"
	subnetID = vnetID + "/subnets/GatewaySubnet"
)

func testVNet() *armnetwork.VirtualNetwork {
	return &armnetwork.VirtualNetwork{
		ID:       to.Ptr(vnetID),
		Name:     to.Ptr("vnet-a"),
		Location: to.Ptr("westeurope"),
		Tags:     map[string]*string{"label": to.Ptr("Production")},
		Properties: &armnetwork.VirtualNetworkPropertiesFormat{
			AddressSpace: &armnetwork.AddressSpace{AddressPrefixes: []*string{to.Ptr("10.0.0.0/16")}},
			DhcpOptions:  &armnetwork.DhcpOptions{DNSServers: []*string{to.Ptr("10.0.0.4"), to.Ptr("10.0.0.5")}},
			Subnets: []*armnetwork.Subnet{
				{Name: to.Ptr("web"), Properties: &armnetwork.SubnetPropertiesFormat{AddressPrefix: to.Ptr("10.0.1.0/24")}},
				{Name: to.Ptr("GatewaySubnet"), Properties: &armnetwork.SubnetPropertiesFormat{AddressPrefixes: []*string{to.Ptr("10.0.255.0/27")}}},
			},
		},
	}
}

func testGateway(sku armnetwork.VirtualNetworkGatewaySKUName) *armnetwork.VirtualNetworkGateway {
	return &armnetwork.VirtualNetworkGateway{
		ID:   to.Ptr(gwID),
		Name: to.Ptr("gw-a"),
		Properties: &armnetwork.VirtualNetworkGatewayPropertiesFormat{
			SKU: &armnetwork.VirtualNetworkGatewaySKU{Name: to.Ptr(sku)},
			IPConfigurations: []*armnetwork.VirtualNetworkGatewayIPConfiguration{{
				Properties: &armnetwork.VirtualNetworkGatewayIPConfigurationPropertiesFormat{
					Subnet: &armnetwork.SubResource{ID: to.Ptr(subnetID)},
				},
			}},
			VPNClientConfiguration: &armnetwork.VPNClientConfiguration{
				VPNClientAddressPool: &armnetwork.AddressSpace{AddressPrefixes: []*string{to.Ptr("172.16.0.0/24")}},
			},
		},
	}
}

func TestBuildConfiguration(t *testing.T) {
	other := testVNet()
	other.ID = to.Ptr("/subscriptions/s1/resourceGroups/rg1/providers/Microsoft.Network/virtualNetworks/vnet-b")
	other.Name = to.Ptr("vnet-b")
	other.Tags = nil
	other.Properties.DhcpOptions.DNSServers = []*string{to.Ptr("10.0.0.5"), to.Ptr("8.8.8.8")}
	other.Properties.Subnets = nil

	inv := Inventory{
		VirtualNetworks: []*armnetwork.VirtualNetwork{testVNet(), other},
		LocalGateways: []*armnetwork.LocalNetworkGateway{{
			Name: to.Ptr("onprem"),
			Properties: &armnetwork.LocalNetworkGatewayPropertiesFormat{
				GatewayIPAddress:         to.Ptr("203.0.113.10"),
				LocalNetworkAddressSpace: &armnetwork.AddressSpace{AddressPrefixes: []*string{to.Ptr("192.168.0.0/16")}},
			},
		}},
		Gateways: []*armnetwork.VirtualNetworkGateway{testGateway(armnetwork.VirtualNetworkGatewaySKUNameStandard)},
		Connections: []*armnetwork.VirtualNetworkGatewayConnection{
			{
				Properties: &armnetwork.VirtualNetworkGatewayConnectionPropertiesFormat{
					ConnectionType:         to.Ptr(armnetwork.VirtualNetworkGatewayConnectionTypeIPsec),
					VirtualNetworkGateway1: &armnetwork.VirtualNetworkGateway{ID: to.Ptr(gwID)},
					LocalNetworkGateway2:   &armnetwork.LocalNetworkGateway{Name: to.Ptr("onprem")},
				},
			},
			{
				Properties: &armnetwork.VirtualNetworkGatewayConnectionPropertiesFormat{
					ConnectionType:         to.Ptr(armnetwork.VirtualNetworkGatewayConnectionTypeVnet2Vnet),
					VirtualNetworkGateway1: &armnetwork.VirtualNetworkGateway{ID: to.Ptr(gwID)},
				},
			},
		},
	}

	want := &domain.NetworkConfiguration{
		DNSServers: []domain.DNSServer{
			{Name: "10.0.0.4", IPAddress: "10.0.0.4"},
			{Name: "10.0.0.5", IPAddress: "10.0.0.5"},
			{Name: "8.8.8.8", IPAddress: "8.8.8.8"},
		},
		LocalNetworkSites: []domain.LocalNetworkSite{
			{Name: "onprem", VPNGatewayAddress: "203.0.113.10", AddressSpace: []string{"192.168.0.0/16"}},
		},
		VirtualNetworkSites: []domain.VirtualNetworkSite{
			{
				Name:                 "vnet-a",
				Label:                "Production",
				Location:             "westeurope",
				AddressSpace:         []string{"10.0.0.0/16"},
				DNSServersReferences: []string{"10.0.0.4", "10.0.0.5"},
				Subnets: []domain.Subnet{
					{Name: "web", AddressPrefix: "10.0.1.0/24"},
					{Name: "GatewaySubnet", AddressPrefix: "10.0.255.0/27"},
				},
				Gateway: &domain.Gateway{
					Profile:              "Medium",
					VPNClientAddressPool: []string{"172.16.0.0/24"},
					ConnectionsToLocalNetwork: []domain.LocalNetworkConnection{
						{Name: "onprem", ConnectionType: "IPsec"},
					},
				},
			},
			{
				Name:                 "vnet-b",
				Location:             "westeurope",
				AddressSpace:         []string{"10.0.0.0/16"},
				DNSServersReferences: []string{"10.0.0.5", "8.8.8.8"},
			},
		},
	}

	got := BuildConfiguration(inv)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("BuildConfiguration() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildConfiguration_Empty(t *testing.T) {
	got := BuildConfiguration(Inventory{})
	assert.Empty(t, got.DNSServers)
	assert.Empty(t, got.LocalNetworkSites)
	assert.Empty(t, got.VirtualNetworkSites)
}

func TestLegacyProfile(t *testing.T) {
	tests := map[string]string{
		"Basic":            "Small",
		"Standard":         "Medium",
		"HighPerformance":  "Large",
		"UltraPerformance": "ExtraLarge",
		"VpnGw1":           "VpnGw1",
	}
	for sku, want := range tests {
		t.Run(sku, func(t *testing.T) {
			assert.Equal(t, want, legacyProfile(sku))
		})
	}
}

func TestLegacyConnectionType(t *testing.T) {
	assert.Equal(t, "Dedicated", legacyConnectionType("ExpressRoute"))
	assert.Equal(t, "IPsec", legacyConnectionType("IPsec"))
}

func TestLocalGatewayName_FromID(t *testing.T) {
	lng := &armnetwork.LocalNetworkGateway{
		ID: to.Ptr("/subscriptions/s1/resourceGroups/rg1/providers/Microsoft.Network/localNetworkGateways/branch"),
	}
	assert.Equal(t, "branch", localGatewayName(lng))
}

func TestGatewayFor_NoMatch(t *testing.T) {
	gw := testGateway(armnetwork.VirtualNetworkGatewaySKUNameBasic)
	gw.Properties.IPConfigurations[0].Properties.Subnet.ID = to.Ptr(
		"/subscriptions/s1/resourceGroups/rg1/providers/Microsoft.Network/virtualNetworks/elsewhere/subnets/GatewaySubnet")

	assert.Nil(t, gatewayFor(testVNet(), []*armnetwork.VirtualNetworkGateway{gw}))
}
