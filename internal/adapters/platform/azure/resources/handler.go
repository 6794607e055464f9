package resources

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"

	"github.com/olusolaa/azmgmt/internal/adapters/platform/azure/shared"
	"github.com/olusolaa/azmgmt/internal/core/domain"
	"github.com/olusolaa/azmgmt/internal/core/ports"
	apperrors "github.com/olusolaa/azmgmt/internal/errors"
)

const runningFilter = "provisioningState eq 'Running'"

// DeploymentHandler implements ports.DeploymentClient.
type DeploymentHandler struct {
	deployments DeploymentsAPI
	limiter     shared.RateLimiter
	errHandler  shared.ErrorHandler
	logger      ports.Logger
}

func NewDeploymentHandler(api DeploymentsAPI, limiter shared.RateLimiter, errHandler shared.ErrorHandler, logger ports.Logger) *DeploymentHandler {
	return &DeploymentHandler{
		deployments: api,
		limiter:     limiter,
		errHandler:  errHandler,
		logger:      logger.WithFields(map[string]any{domain.FieldResourceKind: domain.KindDeployment}),
	}
}

func (h *DeploymentHandler) ListDeployments(ctx context.Context, resourceGroup string) ([]domain.Deployment, error) {
	return h.list(ctx, resourceGroup, nil)
}

func (h *DeploymentHandler) list(ctx context.Context, resourceGroup string, opts *armresources.DeploymentsClientListByResourceGroupOptions) ([]domain.Deployment, error) {
	pager := h.deployments.NewListByResourceGroupPager(resourceGroup, opts)

	var out []domain.Deployment
	pageNum := 0
	for pager.More() {
		if err := h.limiter.Wait(ctx, h.logger); err != nil {
			return nil, h.errHandler.Handle(ctx, domain.ResourceRef{Kind: domain.KindDeployment, ResourceGroup: resourceGroup}, err)
		}
		pageNum++
		h.logger.Debugf(ctx, "Fetching deployments of resource group '%s', page %d", resourceGroup, pageNum)

		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, h.errHandler.Handle(ctx, domain.ResourceRef{Kind: domain.KindDeployment, ResourceGroup: resourceGroup}, err)
		}
		for _, d := range page.Value {
			if d == nil {
				continue
			}
			out = append(out, mapDeployment(resourceGroup, d))
		}
	}
	return out, nil
}

// CancelDeployment cancels deploymentName, or when it is empty the first
// deployment of the group that is still running. It returns the cancelled name.
func (h *DeploymentHandler) CancelDeployment(ctx context.Context, resourceGroup, deploymentName string) (string, error) {
	if deploymentName == "" {
		running, err := h.list(ctx, resourceGroup, &armresources.DeploymentsClientListByResourceGroupOptions{
			Filter: to.Ptr(runningFilter),
		})
		if err != nil {
			return "", err
		}
		for _, d := range running {
			if d.Cancellable() {
				deploymentName = d.Name
				break
			}
		}
		if deploymentName == "" {
			return "", apperrors.NewUserFacing(apperrors.CodeResourceNotFound,
				fmt.Sprintf("no running deployment found in resource group '%s'", resourceGroup),
				"Use 'azmgmt deployment list' to see the deployments of the group.")
		}
	}

	ref := domain.ResourceRef{Kind: domain.KindDeployment, ResourceGroup: resourceGroup, Name: deploymentName}
	if err := h.limiter.Wait(ctx, h.logger); err != nil {
		return "", h.errHandler.Handle(ctx, ref, err)
	}
	h.logger.Debugf(ctx, "Cancelling deployment '%s' in resource group '%s'", deploymentName, resourceGroup)
	if _, err := h.deployments.Cancel(ctx, resourceGroup, deploymentName, nil); err != nil {
		return "", h.errHandler.Handle(ctx, ref, err)
	}
	return deploymentName, nil
}
