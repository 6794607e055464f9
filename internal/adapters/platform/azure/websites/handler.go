package websites

import (
	"context"
	"fmt"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/appservice/armappservice/v2"

	"github.com/olusolaa/azmgmt/internal/adapters/platform/azure/shared"
	"github.com/olusolaa/azmgmt/internal/core/domain"
	"github.com/olusolaa/azmgmt/internal/core/ports"
	apperrors "github.com/olusolaa/azmgmt/internal/errors"
	"github.com/olusolaa/azmgmt/pkg/convert"
)

// SiteHandler implements ports.WebsiteClient.
type SiteHandler struct {
	apps       WebAppsAPI
	limiter    shared.RateLimiter
	errHandler shared.ErrorHandler
	logger     ports.Logger
}

func NewSiteHandler(api WebAppsAPI, limiter shared.RateLimiter, errHandler shared.ErrorHandler, logger ports.Logger) *SiteHandler {
	return &SiteHandler{
		apps:       api,
		limiter:    limiter,
		errHandler: errHandler,
		logger:     logger.WithFields(map[string]any{domain.FieldResourceKind: domain.KindWebsiteDeployment}),
	}
}

// FindSite searches the whole subscription for a web app called name and
// returns its resource group.
func (h *SiteHandler) FindSite(ctx context.Context, name string) (string, error) {
	sites, err := shared.CollectPages(ctx, h.apps.NewListPager(nil), h.limiter, h.logger,
		func(p armappservice.WebAppsClientListResponse) []*armappservice.Site { return p.Value })
	if err != nil {
		return "", h.errHandler.Handle(ctx, domain.ResourceRef{Kind: domain.KindWebsite}, err)
	}
	for _, s := range sites {
		if strings.EqualFold(convert.Deref(s.Name), name) {
			rg := siteResourceGroup(s)
			h.logger.Debugf(ctx, "Found web app '%s' in resource group '%s'", name, rg)
			return rg, nil
		}
	}
	return "", apperrors.New(apperrors.CodeResourceNotFound,
		fmt.Sprintf("%s not found in subscription", domain.ResourceRef{Kind: domain.KindWebsite, Name: name}))
}

func (h *SiteHandler) ListDeployments(ctx context.Context, resourceGroup, site string) ([]domain.WebsiteDeployment, error) {
	deployments, err := shared.CollectPages(ctx, h.apps.NewListDeploymentsPager(resourceGroup, site, nil), h.limiter, h.logger,
		func(p armappservice.WebAppsClientListDeploymentsResponse) []*armappservice.Deployment { return p.Value })
	if err != nil {
		return nil, h.errHandler.Handle(ctx, domain.ResourceRef{Kind: domain.KindWebsite, ResourceGroup: resourceGroup, Name: site}, err)
	}
	out := make([]domain.WebsiteDeployment, 0, len(deployments))
	for _, d := range deployments {
		out = append(out, mapDeployment(d))
	}
	return out, nil
}

func (h *SiteHandler) ListDeploymentLogs(ctx context.Context, resourceGroup, site, deploymentID string) ([]domain.WebsiteLog, error) {
	ref := domain.ResourceRef{Kind: domain.KindWebsiteDeployment, ResourceGroup: resourceGroup, Name: site + "/" + deploymentID}
	if err := h.limiter.Wait(ctx, h.logger); err != nil {
		return nil, h.errHandler.Handle(ctx, ref, err)
	}
	h.logger.Debugf(ctx, "Reading log of deployment '%s' of web app '%s'", deploymentID, site)
	resp, err := h.apps.ListDeploymentLog(ctx, resourceGroup, site, deploymentID, nil)
	if err != nil {
		return nil, h.errHandler.Handle(ctx, ref, err)
	}
	return mapDeploymentLog(deploymentID, &resp.Deployment), nil
}
