package network

import (
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v4"

	"github.com/olusolaa/azmgmt/internal/core/domain"
	"github.com/olusolaa/azmgmt/pkg/convert"
)

const labelTag = "label"

// Inventory is everything read from one or more resource groups, in
// provider order.
type Inventory struct {
	VirtualNetworks []*armnetwork.VirtualNetwork
	LocalGateways   []*armnetwork.LocalNetworkGateway
	Gateways        []*armnetwork.VirtualNetworkGateway
	Connections     []*armnetwork.VirtualNetworkGatewayConnection
}

// gatewayProfiles maps ARM gateway SKUs onto the legacy gateway sizes. Other
// SKUs are passed through and rejected by the document mapper.
var gatewayProfiles = map[string]string{
	"basic":            "Small",
	"standard":         "Medium",
	"highperformance":  "Large",
	"ultraperformance": "ExtraLarge",
}

// BuildConfiguration assembles the provider-neutral network configuration.
func BuildConfiguration(inv Inventory) *domain.NetworkConfiguration {
	cfg := &domain.NetworkConfiguration{}

	seenDNS := make(map[string]bool)
	for _, vnet := range inv.VirtualNetworks {
		for _, ip := range dnsServers(vnet) {
			if seenDNS[ip] {
				continue
			}
			seenDNS[ip] = true
			cfg.DNSServers = append(cfg.DNSServers, domain.DNSServer{Name: ip, IPAddress: ip})
		}
	}

	for _, lng := range inv.LocalGateways {
		cfg.LocalNetworkSites = append(cfg.LocalNetworkSites, mapLocalGateway(lng))
	}

	for _, vnet := range inv.VirtualNetworks {
		site := mapVirtualNetwork(vnet)
		if gw := gatewayFor(vnet, inv.Gateways); gw != nil {
			site.Gateway = mapGateway(gw, inv.Connections)
		}
		cfg.VirtualNetworkSites = append(cfg.VirtualNetworkSites, site)
	}
	return cfg
}

func dnsServers(vnet *armnetwork.VirtualNetwork) []string {
	if vnet.Properties == nil || vnet.Properties.DhcpOptions == nil {
		return nil
	}
	return convert.ToSliceOfString(vnet.Properties.DhcpOptions.DNSServers)
}

func addressPrefixes(space *armnetwork.AddressSpace) []string {
	if space == nil {
		return nil
	}
	return convert.ToSliceOfString(space.AddressPrefixes)
}

func mapLocalGateway(lng *armnetwork.LocalNetworkGateway) domain.LocalNetworkSite {
	site := domain.LocalNetworkSite{Name: convert.Deref(lng.Name)}
	if p := lng.Properties; p != nil {
		site.VPNGatewayAddress = convert.Deref(p.GatewayIPAddress)
		if site.VPNGatewayAddress == "" {
			site.VPNGatewayAddress = convert.Deref(p.Fqdn)
		}
		site.AddressSpace = addressPrefixes(p.LocalNetworkAddressSpace)
	}
	return site
}

func mapVirtualNetwork(vnet *armnetwork.VirtualNetwork) domain.VirtualNetworkSite {
	site := domain.VirtualNetworkSite{
		Name:     convert.Deref(vnet.Name),
		Location: convert.Deref(vnet.Location),
		Label:    convert.ToStringMap(vnet.Tags)[labelTag],
	}
	site.DNSServersReferences = dnsServers(vnet)
	if p := vnet.Properties; p != nil {
		site.AddressSpace = addressPrefixes(p.AddressSpace)
		for _, sn := range p.Subnets {
			if sn == nil {
				continue
			}
			site.Subnets = append(site.Subnets, mapSubnet(sn))
		}
	}
	return site
}

func mapSubnet(sn *armnetwork.Subnet) domain.Subnet {
	out := domain.Subnet{Name: convert.Deref(sn.Name)}
	if p := sn.Properties; p != nil {
		out.AddressPrefix = convert.Deref(p.AddressPrefix)
		if out.AddressPrefix == "" {
			if prefixes := convert.ToSliceOfString(p.AddressPrefixes); len(prefixes) > 0 {
				out.AddressPrefix = prefixes[0]
			}
		}
	}
	return out
}

// gatewayFor finds the gateway whose IP configuration sits in a subnet of vnet.
func gatewayFor(vnet *armnetwork.VirtualNetwork, gateways []*armnetwork.VirtualNetworkGateway) *armnetwork.VirtualNetworkGateway {
	vnetID := convert.Deref(vnet.ID)
	vnetName := convert.Deref(vnet.Name)
	for _, gw := range gateways {
		if gw.Properties == nil {
			continue
		}
		for _, ipc := range gw.Properties.IPConfigurations {
			if ipc == nil || ipc.Properties == nil || ipc.Properties.Subnet == nil {
				continue
			}
			if subnetInVNet(convert.Deref(ipc.Properties.Subnet.ID), vnetID, vnetName) {
				return gw
			}
		}
	}
	return nil
}

func subnetInVNet(subnetID, vnetID, vnetName string) bool {
	rid, err := arm.ParseResourceID(subnetID)
	if err != nil || rid.Parent == nil {
		return false
	}
	if vnetID != "" {
		return strings.EqualFold(rid.Parent.String(), vnetID)
	}
	return strings.EqualFold(rid.Parent.Name, vnetName)
}

func mapGateway(gw *armnetwork.VirtualNetworkGateway, connections []*armnetwork.VirtualNetworkGatewayConnection) *domain.Gateway {
	out := &domain.Gateway{}
	if p := gw.Properties; p != nil {
		if p.SKU != nil {
			out.Profile = legacyProfile(convert.ToEnumString(p.SKU.Name))
		}
		if p.VPNClientConfiguration != nil {
			out.VPNClientAddressPool = addressPrefixes(p.VPNClientConfiguration.VPNClientAddressPool)
		}
	}

	for _, c := range connections {
		if c == nil || c.Properties == nil || c.Properties.LocalNetworkGateway2 == nil {
			continue
		}
		if !sameResource(c.Properties.VirtualNetworkGateway1, gw) {
			continue
		}
		out.ConnectionsToLocalNetwork = append(out.ConnectionsToLocalNetwork, domain.LocalNetworkConnection{
			Name:           localGatewayName(c.Properties.LocalNetworkGateway2),
			ConnectionType: legacyConnectionType(convert.ToEnumString(c.Properties.ConnectionType)),
		})
	}
	return out
}

func sameResource(ref *armnetwork.VirtualNetworkGateway, gw *armnetwork.VirtualNetworkGateway) bool {
	if ref == nil {
		return false
	}
	if id := convert.Deref(ref.ID); id != "" && convert.Deref(gw.ID) != "" {
		return strings.EqualFold(id, convert.Deref(gw.ID))
	}
	return strings.EqualFold(convert.Deref(ref.Name), convert.Deref(gw.Name))
}

func localGatewayName(lng *armnetwork.LocalNetworkGateway) string {
	if name := convert.Deref(lng.Name); name != "" {
		return name
	}
	if rid, err := arm.ParseResourceID(convert.Deref(lng.ID)); err == nil {
		return rid.Name
	}
	return ""
}

func legacyProfile(sku string) string {
	if p, ok := gatewayProfiles[strings.ToLower(sku)]; ok {
		return p
	}
	return sku
}

func legacyConnectionType(t string) string {
	if strings.EqualFold(t, string(armnetwork.VirtualNetworkGatewayConnectionTypeExpressRoute)) {
		return "Dedicated"
	}
	return t
}
