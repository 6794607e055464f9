package resources

import (
	"context"

	"github.com/olusolaa/azmgmt/internal/adapters/platform/azure/shared"
	"github.com/olusolaa/azmgmt/internal/core/domain"
	"github.com/olusolaa/azmgmt/internal/core/ports"
)

// GroupLister enumerates the resource groups of the subscription, in
// provider order.
type GroupLister struct {
	groups     ResourceGroupsAPI
	limiter    shared.RateLimiter
	errHandler shared.ErrorHandler
	logger     ports.Logger
}

func NewGroupLister(api ResourceGroupsAPI, limiter shared.RateLimiter, errHandler shared.ErrorHandler, logger ports.Logger) *GroupLister {
	return &GroupLister{groups: api, limiter: limiter, errHandler: errHandler, logger: logger}
}

func (g *GroupLister) ListResourceGroups(ctx context.Context) ([]string, error) {
	pager := g.groups.NewListPager(nil)

	var names []string
	for pager.More() {
		if err := g.limiter.Wait(ctx, g.logger); err != nil {
			return nil, g.errHandler.Handle(ctx, domain.ResourceRef{Kind: domain.KindResourceGroup}, err)
		}
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, g.errHandler.Handle(ctx, domain.ResourceRef{Kind: domain.KindResourceGroup}, err)
		}
		for _, rg := range page.Value {
			if rg == nil || rg.Name == nil {
				continue
			}
			names = append(names, *rg.Name)
		}
	}
	g.logger.Debugf(ctx, "Found %d resource groups", len(names))
	return names, nil
}
