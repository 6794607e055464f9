package trafficmanager

import "github.com/olusolaa/azmgmt/internal/core/domain"

// Profile is the emitted view of a traffic-manager profile.
type Profile struct {
	Name          string     `json:"name"`
	ResourceGroup string     `json:"resource_group"`
	DNSName       string     `json:"dns_name,omitempty"`
	RoutingMethod string     `json:"load_balancing_method,omitempty"`
	Status        string     `json:"status,omitempty"`
	Endpoints     []Endpoint `json:"endpoints"`
}

type Endpoint struct {
	DomainName string `json:"domain_name"`
	Location   string `json:"location,omitempty"`
	Type       string `json:"type"`
	Status     string `json:"status"`
	Weight     int64  `json:"weight"`
}

func MapProfile(p domain.TrafficProfile) Profile {
	out := Profile{
		Name:          p.Name,
		ResourceGroup: p.ResourceGroup,
		DNSName:       p.DNSName,
		RoutingMethod: p.RoutingMethod,
		Status:        p.Status,
		Endpoints:     make([]Endpoint, 0, len(p.Endpoints)),
	}
	for _, e := range p.Endpoints {
		out.Endpoints = append(out.Endpoints, Endpoint{
			DomainName: e.DomainName,
			Location:   e.Location,
			Type:       string(e.Type),
			Status:     string(e.Status),
			Weight:     e.Weight,
		})
	}
	return out
}
