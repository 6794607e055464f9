package trafficmanager

import (
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/trafficmanager/armtrafficmanager"

	"github.com/olusolaa/azmgmt/internal/core/domain"
	"github.com/olusolaa/azmgmt/pkg/convert"
)

const (
	armTypeAzure    = "Microsoft.Network/trafficManagerProfiles/azureEndpoints"
	armTypeExternal = "Microsoft.Network/trafficManagerProfiles/externalEndpoints"

	websiteSuffix = ".azurewebsites.net"
)

func mapProfile(resourceGroup string, p *armtrafficmanager.Profile) domain.TrafficProfile {
	out := domain.TrafficProfile{
		ID:            convert.Deref(p.ID),
		Name:          convert.Deref(p.Name),
		ResourceGroup: resourceGroup,
		Endpoints:     []domain.Endpoint{},
	}
	props := p.Properties
	if props == nil {
		return out
	}
	if props.DNSConfig != nil {
		out.DNSName = convert.Deref(props.DNSConfig.Fqdn)
	}
	out.RoutingMethod = convert.ToEnumString(props.TrafficRoutingMethod)
	out.Status = convert.ToEnumString(props.ProfileStatus)
	for _, e := range props.Endpoints {
		if e == nil {
			continue
		}
		out.Endpoints = append(out.Endpoints, mapEndpoint(e))
	}
	return out
}

func mapEndpoint(e *armtrafficmanager.Endpoint) domain.Endpoint {
	out := domain.Endpoint{
		Name:   convert.Deref(e.Name),
		Weight: domain.DefaultEndpointWeight,
	}
	if p := e.Properties; p != nil {
		out.DomainName = convert.Deref(p.Target)
		out.Location = convert.Deref(p.EndpointLocation)
		out.Status = domain.EndpointStatus(convert.ToEnumString(p.EndpointStatus))
		out.Weight = convert.DerefOr(p.Weight, domain.DefaultEndpointWeight)
	}
	out.Type = endpointType(convert.Deref(e.Type), out.DomainName, targetResourceID(e))
	return out
}

func targetResourceID(e *armtrafficmanager.Endpoint) string {
	if e.Properties == nil {
		return ""
	}
	return convert.Deref(e.Properties.TargetResourceID)
}

func endpointType(armType, target, resourceID string) domain.EndpointType {
	if !strings.EqualFold(armType, armTypeAzure) {
		return domain.EndpointTypeAny
	}
	if strings.HasSuffix(strings.ToLower(target), websiteSuffix) ||
		strings.Contains(strings.ToLower(resourceID), "/microsoft.web/sites/") {
		return domain.EndpointTypeAzureWebsite
	}
	return domain.EndpointTypeCloudService
}

// armEndpointType picks the ARM endpoint type. An Azure endpoint must name its
// target resource, so without one every type is written as external.
func armEndpointType(t domain.EndpointType, resourceID string) string {
	if t == domain.EndpointTypeAny || resourceID == "" {
		return armTypeExternal
	}
	return armTypeAzure
}

// applyEndpoints rewrites the endpoint list of current from the merged domain
// endpoints. Existing ARM endpoints are matched by target so their ids and
// unmanaged properties survive. An endpoint whose type changed loses its id
// and target resource and is written as a new external endpoint.
func applyEndpoints(current armtrafficmanager.Profile, endpoints []domain.Endpoint) armtrafficmanager.Profile {
	if current.Properties == nil {
		current.Properties = &armtrafficmanager.ProfileProperties{}
	}
	existing := make(map[string]*armtrafficmanager.Endpoint)
	for _, e := range current.Properties.Endpoints {
		if e != nil && e.Properties != nil && e.Properties.Target != nil {
			existing[*e.Properties.Target] = e
		}
	}

	updated := make([]*armtrafficmanager.Endpoint, 0, len(endpoints))
	for _, ep := range endpoints {
		var out armtrafficmanager.Endpoint
		prev, ok := existing[ep.DomainName]
		if ok {
			out = *prev
			props := *prev.Properties
			out.Properties = &props
		} else {
			out = armtrafficmanager.Endpoint{
				Name:       to.Ptr(ep.Name),
				Properties: &armtrafficmanager.EndpointProperties{},
			}
		}
		if !ok || endpointType(convert.Deref(out.Type), ep.DomainName, targetResourceID(&out)) != ep.Type {
			out.ID = nil
			out.Properties.TargetResourceID = nil
			out.Type = to.Ptr(armEndpointType(ep.Type, targetResourceID(&out)))
		}
		out.Properties.Target = to.Ptr(ep.DomainName)
		out.Properties.EndpointStatus = to.Ptr(armtrafficmanager.EndpointStatus(ep.Status))
		out.Properties.Weight = to.Ptr(ep.Weight)
		if ep.Location != "" {
			out.Properties.EndpointLocation = to.Ptr(ep.Location)
		}
		updated = append(updated, &out)
	}

	props := *current.Properties
	props.Endpoints = updated
	current.Properties = &props
	return current
}
