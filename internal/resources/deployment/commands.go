package deployment

import (
	"context"

	"github.com/olusolaa/azmgmt/internal/core/domain"
	"github.com/olusolaa/azmgmt/internal/core/ports"
	"github.com/olusolaa/azmgmt/internal/resources/helper"
)

const (
	stopPrompt      = "Are you sure you want to cancel the deployment in resource group '%s'?"
	stopDescription = "Cancelling running deployment"
)

type StopParams struct {
	ResourceGroup string `validate:"required"`
	// Name is optional; empty cancels the running deployment of the group.
	Name     string
	Force    bool
	PassThru bool
}

// StopCommand cancels a resource group deployment after confirmation.
type StopCommand struct {
	params StopParams
	client ports.DeploymentClient
	logger ports.Logger
}

func NewStopCommand(params StopParams, client ports.DeploymentClient, logger ports.Logger) *StopCommand {
	return &StopCommand{params: params, client: client, logger: logger}
}

func (c *StopCommand) Spec() domain.CommandSpec {
	return domain.CommandSpec{
		Name:           "deployment stop",
		Kind:           domain.VerbDestructive,
		PassThru:       c.params.PassThru,
		RequiresTarget: true,
	}
}

func (c *StopCommand) Validate(ctx context.Context) error {
	return helper.ValidateParams(ctx, c.params)
}

func (c *StopCommand) Confirmation() domain.Confirmation {
	return domain.Confirmation{
		Forced:      c.params.Force,
		Prompt:      stopPrompt,
		Description: stopDescription,
		Target:      c.params.ResourceGroup,
	}
}

func (c *StopCommand) Invoke(ctx context.Context) (any, error) {
	name, err := c.client.CancelDeployment(ctx, c.params.ResourceGroup, c.params.Name)
	if err != nil {
		return nil, err
	}
	c.logger.WithFields(map[string]any{
		domain.FieldResourceGroup: c.params.ResourceGroup,
		domain.FieldName:          name,
	}).Infof(ctx, "Cancelled deployment '%s' in resource group '%s'", name, c.params.ResourceGroup)
	return name, nil
}

// Map emits nothing; the pass-through flag is handled by the dispatcher.
func (c *StopCommand) Map(context.Context, any) (any, error) {
	return nil, nil
}

type ListParams struct {
	ResourceGroup string `validate:"required"`
}

// ListCommand lists the deployments of a resource group.
type ListCommand struct {
	params ListParams
	client ports.DeploymentClient
}

func NewListCommand(params ListParams, client ports.DeploymentClient) *ListCommand {
	return &ListCommand{params: params, client: client}
}

func (c *ListCommand) Spec() domain.CommandSpec {
	return domain.CommandSpec{Name: "deployment list", Kind: domain.VerbRead}
}

func (c *ListCommand) Validate(ctx context.Context) error {
	return helper.ValidateParams(ctx, c.params)
}

func (c *ListCommand) Confirmation() domain.Confirmation { return domain.Confirmation{} }

func (c *ListCommand) Invoke(ctx context.Context) (any, error) {
	return c.client.ListDeployments(ctx, c.params.ResourceGroup)
}

func (c *ListCommand) Map(_ context.Context, raw any) (any, error) {
	deployments, _ := raw.([]domain.Deployment)
	if deployments == nil {
		deployments = []domain.Deployment{}
	}
	return deployments, nil
}

var (
	_ ports.Command = (*StopCommand)(nil)
	_ ports.Command = (*ListCommand)(nil)
)
