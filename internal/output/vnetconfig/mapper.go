package vnetconfig

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/olusolaa/azmgmt/internal/core/domain"
	"github.com/olusolaa/azmgmt/internal/errors"
)

// Map converts the provider network configuration into the legacy document.
// A nil response maps to a nil document. Every list keeps provider order.
func Map(resp *domain.NetworkConfiguration) (*NetworkConfiguration, error) {
	if resp == nil {
		return nil, nil
	}

	doc := &NetworkConfiguration{}
	cfg := &doc.VirtualNetworkConfiguration

	for _, ds := range resp.DNSServers {
		cfg.DNS.DNSServers = append(cfg.DNS.DNSServers, mapDNSServer(ds))
	}
	for _, lns := range resp.LocalNetworkSites {
		cfg.LocalNetworkSites = append(cfg.LocalNetworkSites, mapLocalNetworkSite(lns))
	}
	for _, vns := range resp.VirtualNetworkSites {
		site, err := mapVirtualNetworkSite(vns)
		if err != nil {
			return nil, err
		}
		cfg.VirtualNetworkSites = append(cfg.VirtualNetworkSites, site)
	}
	return doc, nil
}

func mapDNSServer(ds domain.DNSServer) DNSServer {
	return DNSServer{Name: ds.Name, IPAddress: ds.IPAddress}
}

func mapLocalNetworkSite(lns domain.LocalNetworkSite) LocalNetworkSite {
	return LocalNetworkSite{
		Name:              lns.Name,
		AddressSpace:      copyStrings(lns.AddressSpace),
		VPNGatewayAddress: lns.VPNGatewayAddress,
	}
}

func mapVirtualNetworkSite(vns domain.VirtualNetworkSite) (VirtualNetworkSite, error) {
	site := VirtualNetworkSite{
		Name:          vns.Name,
		AffinityGroup: vns.AffinityGroup,
		Location:      vns.Location,
		AddressSpace:  copyStrings(vns.AddressSpace),
	}
	for _, sn := range vns.Subnets {
		site.Subnets = append(site.Subnets, mapSubnet(sn))
	}
	for _, ref := range vns.DNSServersReferences {
		site.DNSServersRef = append(site.DNSServersRef, DNSServerRef{Name: ref})
	}
	if vns.Label != "" {
		site.InternetGatewayNetwork = &InternetGatewayNetwork{Name: vns.Label}
	}
	if vns.Gateway != nil {
		gw, err := mapGateway(*vns.Gateway)
		if err != nil {
			return VirtualNetworkSite{}, fmt.Errorf("virtual network site '%s': %w", vns.Name, err)
		}
		site.Gateway = gw
	}
	return site, nil
}

func mapSubnet(sn domain.Subnet) Subnet {
	return Subnet{Name: sn.Name, AddressPrefix: sn.AddressPrefix}
}

func mapGateway(gw domain.Gateway) (*Gateway, error) {
	profile, err := parseEnum("gateway profile", gw.Profile, gatewaySizes)
	if err != nil {
		return nil, err
	}
	out := &Gateway{
		Profile:              profile,
		VPNClientAddressPool: copyStrings(gw.VPNClientAddressPool),
	}
	for _, c := range gw.ConnectionsToLocalNetwork {
		ref, err := mapConnection(c)
		if err != nil {
			return nil, err
		}
		out.ConnectionsToLocalNetwork = append(out.ConnectionsToLocalNetwork, ref)
	}
	return out, nil
}

func mapConnection(c domain.LocalNetworkConnection) (LocalNetworkSiteRef, error) {
	typ, err := parseEnum("connection type", c.ConnectionType, connectionTypes)
	if err != nil {
		return LocalNetworkSiteRef{}, err
	}
	return LocalNetworkSiteRef{
		Name:       c.Name,
		Connection: []Connection{{Type: typ}},
	}, nil
}

// parseEnum matches case-insensitively and returns the canonical spelling.
func parseEnum[T ~string](what, value string, allowed []T) (T, error) {
	for _, a := range allowed {
		if strings.EqualFold(string(a), value) {
			return a, nil
		}
	}
	names := make([]string, len(allowed))
	for i, a := range allowed {
		names[i] = string(a)
	}
	return "", errors.NewUserFacing(errors.CodeSchemaMismatch,
		fmt.Sprintf("%s '%s' is not one of [%s]", what, value, strings.Join(names, ", ")),
		"The provider returned a value the network configuration schema cannot represent.")
}

func copyStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	return append([]string(nil), in...)
}

// Marshal renders doc as indented XML with the standard header.
func Marshal(doc *NetworkConfiguration) (string, error) {
	if doc == nil {
		return "", nil
	}
	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, errors.CodeMappingError, "failed to serialize network configuration")
	}
	return xml.Header + string(body), nil
}
