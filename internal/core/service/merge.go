package service

import (
	"fmt"
	"strings"

	"github.com/olusolaa/azmgmt/internal/core/domain"
	"github.com/olusolaa/azmgmt/internal/errors"
)

// MergeEndpoint creates the endpoint from draft when existing is nil, and
// otherwise overrides only the fields the draft supplies. existing is never
// modified.
func MergeEndpoint(existing *domain.Endpoint, draft domain.EndpointDraft) (domain.Endpoint, error) {
	var typ *domain.EndpointType
	if draft.Type != nil {
		t, err := domain.ParseEndpointType(*draft.Type)
		if err != nil {
			return domain.Endpoint{}, err
		}
		typ = &t
	}
	var status *domain.EndpointStatus
	if draft.Status != nil {
		s, err := domain.ParseEndpointStatus(*draft.Status)
		if err != nil {
			return domain.Endpoint{}, err
		}
		status = &s
	}
	if draft.Weight != nil && *draft.Weight < 1 {
		return domain.Endpoint{}, errors.Validation("Weight", *draft.Weight, "must be at least 1")
	}

	if existing == nil {
		var missing []string
		if draft.DomainName == nil || *draft.DomainName == "" {
			missing = append(missing, "DomainName")
		}
		if typ == nil {
			missing = append(missing, "Type")
		}
		if status == nil {
			missing = append(missing, "Status")
		}
		if len(missing) > 0 {
			return domain.Endpoint{}, errors.NewUserFacing(errors.CodeMissingRequiredField,
				fmt.Sprintf("endpoint does not exist and cannot be created without: %s", strings.Join(missing, ", ")),
				"Supply --type and --status to add a new endpoint.")
		}

		created := domain.Endpoint{
			Name:       endpointName(*draft.DomainName),
			DomainName: *draft.DomainName,
			Type:       *typ,
			Status:     *status,
			Weight:     domain.DefaultEndpointWeight,
		}
		if draft.Location != nil {
			created.Location = *draft.Location
		}
		if draft.Weight != nil {
			created.Weight = *draft.Weight
		}
		return created, nil
	}

	merged := *existing
	if draft.DomainName != nil && *draft.DomainName != "" {
		merged.DomainName = *draft.DomainName
	}
	if draft.Location != nil {
		merged.Location = *draft.Location
	}
	if typ != nil {
		merged.Type = *typ
	}
	if status != nil {
		merged.Status = *status
	}
	if draft.Weight != nil {
		merged.Weight = *draft.Weight
	}
	if merged.Name == "" {
		merged.Name = endpointName(merged.DomainName)
	}
	return merged, nil
}

// ApplyEndpointDraft merges draft into the endpoint of profile matching the
// draft's domain name, appending a new endpoint when none matches. The input
// profile is not modified.
func ApplyEndpointDraft(profile domain.TrafficProfile, draft domain.EndpointDraft) (domain.TrafficProfile, bool, error) {
	if draft.DomainName == nil || *draft.DomainName == "" {
		return profile, false, errors.Validation("DomainName", "", "a domain name is required")
	}

	out := profile
	out.Endpoints = append([]domain.Endpoint(nil), profile.Endpoints...)

	idx := out.FindEndpoint(*draft.DomainName)
	if idx < 0 {
		ep, err := MergeEndpoint(nil, draft)
		if err != nil {
			return profile, false, err
		}
		out.Endpoints = append(out.Endpoints, ep)
		return out, true, nil
	}

	ep, err := MergeEndpoint(&out.Endpoints[idx], draft)
	if err != nil {
		return profile, false, err
	}
	out.Endpoints[idx] = ep
	return out, false, nil
}

// endpointName derives a provider-safe child resource name from a DNS name.
func endpointName(domainName string) string {
	return strings.ReplaceAll(strings.TrimSuffix(domainName, "."), ".", "-")
}
