package automation

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/automation/armautomation"
	"github.com/google/uuid"

	"github.com/olusolaa/azmgmt/internal/adapters/platform/azure/shared"
	"github.com/olusolaa/azmgmt/internal/core/domain"
	"github.com/olusolaa/azmgmt/internal/core/ports"
)

// JobHandler implements ports.AutomationClient.
type JobHandler struct {
	jobs       JobAPI
	limiter    shared.RateLimiter
	errHandler shared.ErrorHandler
	logger     ports.Logger
}

func NewJobHandler(api JobAPI, limiter shared.RateLimiter, errHandler shared.ErrorHandler, logger ports.Logger) *JobHandler {
	return &JobHandler{
		jobs:       api,
		limiter:    limiter,
		errHandler: errHandler,
		logger:     logger.WithFields(map[string]any{domain.FieldResourceKind: domain.KindAutomationJob}),
	}
}

func (h *JobHandler) SuspendJob(ctx context.Context, resourceGroup, account string, id uuid.UUID) error {
	ref := domain.ResourceRef{Kind: domain.KindAutomationJob, ResourceGroup: resourceGroup, Name: fmt.Sprintf("%s/%s", account, id)}
	if err := h.limiter.Wait(ctx, h.logger); err != nil {
		return h.errHandler.Handle(ctx, ref, err)
	}

	ctx, requestID := shared.WithClientRequestID(ctx)
	h.logger.WithFields(map[string]any{domain.FieldRequestID: requestID}).
		Debugf(ctx, "Suspending automation job '%s' in account '%s'", id, account)

	_, err := h.jobs.Suspend(ctx, resourceGroup, account, id.String(), &armautomation.JobClientSuspendOptions{
		ClientRequestID: to.Ptr(requestID),
	})
	if err != nil {
		return h.errHandler.Handle(ctx, ref, err)
	}
	return nil
}
