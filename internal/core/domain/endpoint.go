package domain

import (
	"fmt"
	"strings"

	apperrors "github.com/olusolaa/azmgmt/internal/errors"
)

// DefaultEndpointWeight is assigned to endpoints created without a weight.
const DefaultEndpointWeight int64 = 1

type EndpointType string

const (
	EndpointTypeCloudService EndpointType = "CloudService"
	EndpointTypeAzureWebsite EndpointType = "AzureWebsite"
	EndpointTypeAny          EndpointType = "Any"
)

var endpointTypes = []EndpointType{EndpointTypeCloudService, EndpointTypeAzureWebsite, EndpointTypeAny}

type EndpointStatus string

const (
	EndpointStatusEnabled  EndpointStatus = "Enabled"
	EndpointStatusDisabled EndpointStatus = "Disabled"
)

var endpointStatuses = []EndpointStatus{EndpointStatusEnabled, EndpointStatusDisabled}

// ParseEndpointType is case-sensitive: "cloudservice" is rejected.
func ParseEndpointType(s string) (EndpointType, error) {
	for _, t := range endpointTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", apperrors.Validation("Type", s, "must be one of "+joinValues(endpointTypes))
}

func ParseEndpointStatus(s string) (EndpointStatus, error) {
	for _, st := range endpointStatuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", apperrors.Validation("Status", s, "must be one of "+joinValues(endpointStatuses))
}

func EndpointTypeValues() []string   { return toStrings(endpointTypes) }
func EndpointStatusValues() []string { return toStrings(endpointStatuses) }

// Endpoint is a traffic-manager endpoint as stored in its profile.
// DomainName is the identity key within the profile.
type Endpoint struct {
	Name       string         `json:"name,omitempty"`
	DomainName string         `json:"domain_name"`
	Location   string         `json:"location,omitempty"`
	Type       EndpointType   `json:"type"`
	Status     EndpointStatus `json:"status"`
	Weight     int64          `json:"weight"`
}

// EndpointDraft carries the fields supplied on the command line. A nil field
// was not supplied; an empty string is a supplied value.
type EndpointDraft struct {
	DomainName *string
	Location   *string
	Type       *string
	Status     *string
	Weight     *int64
}

type TrafficProfile struct {
	ID            string     `json:"id,omitempty"`
	Name          string     `json:"name"`
	ResourceGroup string     `json:"resource_group"`
	DNSName       string     `json:"dns_name,omitempty"`
	RoutingMethod string     `json:"routing_method,omitempty"`
	Status        string     `json:"status,omitempty"`
	Endpoints     []Endpoint `json:"endpoints"`
}

// FindEndpoint returns the index of the endpoint with domainName, or -1.
func (p TrafficProfile) FindEndpoint(domainName string) int {
	for i, e := range p.Endpoints {
		if e.DomainName == domainName {
			return i
		}
	}
	return -1
}

func joinValues[T ~string](vals []T) string {
	return fmt.Sprintf("[%s]", strings.Join(toStrings(vals), ", "))
}

func toStrings[T ~string](vals []T) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = string(v)
	}
	return out
}
