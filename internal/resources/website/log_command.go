package website

import (
	"context"
	"fmt"

	"github.com/olusolaa/azmgmt/internal/core/domain"
	"github.com/olusolaa/azmgmt/internal/core/ports"
	"github.com/olusolaa/azmgmt/internal/errors"
	"github.com/olusolaa/azmgmt/internal/output/weblog"
	"github.com/olusolaa/azmgmt/internal/resources/helper"
)

type LogParams struct {
	Name string `validate:"required"`
	// ResourceGroup is looked up from the site name when empty.
	ResourceGroup string
}

// LogCommand reads the log of the most recent deployment of a web site.
type LogCommand struct {
	params LogParams
	client ports.WebsiteClient
	logger ports.Logger
}

type logResult struct {
	deploymentID string
	logs         []domain.WebsiteLog
}

func NewLogCommand(params LogParams, client ports.WebsiteClient, logger ports.Logger) *LogCommand {
	return &LogCommand{params: params, client: client, logger: logger}
}

func (c *LogCommand) Spec() domain.CommandSpec {
	return domain.CommandSpec{Name: "website log get", Kind: domain.VerbRead}
}

func (c *LogCommand) Validate(ctx context.Context) error {
	return helper.ValidateParams(ctx, c.params)
}

func (c *LogCommand) Confirmation() domain.Confirmation { return domain.Confirmation{} }

func (c *LogCommand) Invoke(ctx context.Context) (any, error) {
	rg := c.params.ResourceGroup
	if rg == "" {
		var err error
		if rg, err = c.client.FindSite(ctx, c.params.Name); err != nil {
			return nil, err
		}
	}

	deployments, err := c.client.ListDeployments(ctx, rg, c.params.Name)
	if err != nil {
		return nil, err
	}
	latest, ok := weblog.Latest(deployments)
	if !ok {
		return nil, errors.New(errors.CodeResourceNotFound, fmt.Sprintf("web app '%s' has no deployments", c.params.Name))
	}
	c.logger.Debugf(ctx, "Reading log of deployment '%s' started %s", latest.ID, latest.StartTime)

	logs, err := c.client.ListDeploymentLogs(ctx, rg, c.params.Name, latest.ID)
	if err != nil {
		return nil, err
	}
	return logResult{deploymentID: latest.ID, logs: logs}, nil
}

func (c *LogCommand) Map(_ context.Context, raw any) (any, error) {
	res, ok := raw.(logResult)
	if !ok {
		return nil, errors.New(errors.CodeMappingError, "unexpected website log result")
	}
	return weblog.Map(res.deploymentID, res.logs), nil
}

var _ ports.Command = (*LogCommand)(nil)
