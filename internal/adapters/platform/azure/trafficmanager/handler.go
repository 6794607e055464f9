package trafficmanager

import (
	"context"

	"github.com/olusolaa/azmgmt/internal/adapters/platform/azure/shared"
	"github.com/olusolaa/azmgmt/internal/core/domain"
	"github.com/olusolaa/azmgmt/internal/core/ports"
)

// ProfileHandler implements ports.TrafficManagerClient.
type ProfileHandler struct {
	profiles   ProfilesAPI
	limiter    shared.RateLimiter
	errHandler shared.ErrorHandler
	logger     ports.Logger
}

func NewProfileHandler(api ProfilesAPI, limiter shared.RateLimiter, errHandler shared.ErrorHandler, logger ports.Logger) *ProfileHandler {
	return &ProfileHandler{
		profiles:   api,
		limiter:    limiter,
		errHandler: errHandler,
		logger:     logger.WithFields(map[string]any{domain.FieldResourceKind: domain.KindTrafficProfile}),
	}
}

func (h *ProfileHandler) GetProfile(ctx context.Context, resourceGroup, name string) (*domain.TrafficProfile, error) {
	ref := domain.ResourceRef{Kind: domain.KindTrafficProfile, ResourceGroup: resourceGroup, Name: name}
	if err := h.limiter.Wait(ctx, h.logger); err != nil {
		return nil, h.errHandler.Handle(ctx, ref, err)
	}
	h.logger.Debugf(ctx, "Getting traffic manager profile '%s' in resource group '%s'", name, resourceGroup)
	resp, err := h.profiles.Get(ctx, resourceGroup, name, nil)
	if err != nil {
		return nil, h.errHandler.Handle(ctx, ref, err)
	}
	p := mapProfile(resourceGroup, &resp.Profile)
	return &p, nil
}

// UpdateProfile writes the endpoints of profile back to the provider. The
// stored profile is re-read so properties this tool does not manage are kept.
func (h *ProfileHandler) UpdateProfile(ctx context.Context, profile domain.TrafficProfile) (*domain.TrafficProfile, error) {
	ref := domain.ResourceRef{Kind: domain.KindTrafficProfile, ResourceGroup: profile.ResourceGroup, Name: profile.Name}
	if err := h.limiter.Wait(ctx, h.logger); err != nil {
		return nil, h.errHandler.Handle(ctx, ref, err)
	}
	current, err := h.profiles.Get(ctx, profile.ResourceGroup, profile.Name, nil)
	if err != nil {
		return nil, h.errHandler.Handle(ctx, ref, err)
	}

	params := applyEndpoints(current.Profile, profile.Endpoints)

	if err := h.limiter.Wait(ctx, h.logger); err != nil {
		return nil, h.errHandler.Handle(ctx, ref, err)
	}
	h.logger.Debugf(ctx, "Updating traffic manager profile '%s' with %d endpoints", profile.Name, len(profile.Endpoints))
	resp, err := h.profiles.CreateOrUpdate(ctx, profile.ResourceGroup, profile.Name, params, nil)
	if err != nil {
		return nil, h.errHandler.Handle(ctx, ref, err)
	}
	updated := mapProfile(profile.ResourceGroup, &resp.Profile)
	return &updated, nil
}
