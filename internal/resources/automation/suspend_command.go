package automation

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/olusolaa/azmgmt/internal/core/domain"
	"github.com/olusolaa/azmgmt/internal/core/ports"
	"github.com/olusolaa/azmgmt/internal/errors"
	"github.com/olusolaa/azmgmt/internal/resources/helper"
)

type SuspendParams struct {
	ResourceGroup string `validate:"required"`
	Account       string `validate:"required"`
	ID            string `validate:"required,uuid"`
}

// SuspendCommand suspends one automation job.
type SuspendCommand struct {
	params SuspendParams
	client ports.AutomationClient
	logger ports.Logger
}

// NewSuspendCommand accepts the job id in any letter case.
func NewSuspendCommand(params SuspendParams, client ports.AutomationClient, logger ports.Logger) *SuspendCommand {
	params.ID = strings.ToLower(strings.TrimSpace(params.ID))
	return &SuspendCommand{params: params, client: client, logger: logger}
}

func (c *SuspendCommand) Spec() domain.CommandSpec {
	return domain.CommandSpec{Name: "automation job suspend", Kind: domain.VerbWrite, RequiresTarget: true}
}

func (c *SuspendCommand) Validate(ctx context.Context) error {
	return helper.ValidateParams(ctx, c.params)
}

func (c *SuspendCommand) Confirmation() domain.Confirmation { return domain.Confirmation{} }

func (c *SuspendCommand) Invoke(ctx context.Context) (any, error) {
	id, err := uuid.Parse(c.params.ID)
	if err != nil {
		return nil, errors.Validation("Id", c.params.ID, "must be a GUID")
	}
	if err := c.client.SuspendJob(ctx, c.params.ResourceGroup, c.params.Account, id); err != nil {
		return nil, err
	}
	c.logger.Infof(ctx, "Suspended automation job '%s' in account '%s'", id, c.params.Account)
	return nil, nil
}

func (c *SuspendCommand) Map(context.Context, any) (any, error) {
	return nil, nil
}

var _ ports.Command = (*SuspendCommand)(nil)
