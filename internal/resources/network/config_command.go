package network

import (
	"context"

	"github.com/olusolaa/azmgmt/internal/core/domain"
	"github.com/olusolaa/azmgmt/internal/core/ports"
	"github.com/olusolaa/azmgmt/internal/errors"
	"github.com/olusolaa/azmgmt/internal/output/vnetconfig"
	"github.com/olusolaa/azmgmt/internal/resources/helper"
)

type GetConfigParams struct {
	// ResourceGroup limits the read to one group; empty reads the subscription.
	ResourceGroup string
	ExportToFile  string `validate:"omitempty,parentdir"`
	// Description is recorded as the operation description, normally the
	// command line.
	Description string
}

// GetConfigCommand reads the network configuration as a legacy
// NetworkConfiguration document and optionally writes it to a file.
type GetConfigCommand struct {
	params GetConfigParams
	client ports.NetworkClient
	logger ports.Logger
}

type configResult struct {
	config *domain.NetworkConfiguration
	status domain.OperationStatus
}

func NewGetConfigCommand(params GetConfigParams, client ports.NetworkClient, logger ports.Logger) *GetConfigCommand {
	return &GetConfigCommand{params: params, client: client, logger: logger}
}

func (c *GetConfigCommand) Spec() domain.CommandSpec {
	return domain.CommandSpec{Name: "vnet config get", Kind: domain.VerbRead}
}

func (c *GetConfigCommand) Validate(ctx context.Context) error {
	return helper.ValidateParams(ctx, c.params)
}

func (c *GetConfigCommand) Confirmation() domain.Confirmation { return domain.Confirmation{} }

func (c *GetConfigCommand) Invoke(ctx context.Context) (any, error) {
	cfg, err := c.client.GetConfiguration(ctx, c.params.ResourceGroup)
	if err != nil {
		return nil, err
	}
	status, err := c.client.GetOperationStatus(ctx, cfg.RequestID)
	if err != nil {
		return nil, err
	}
	return configResult{config: cfg, status: status}, nil
}

func (c *GetConfigCommand) Map(ctx context.Context, raw any) (any, error) {
	res, ok := raw.(configResult)
	if !ok {
		return nil, errors.New(errors.CodeMappingError, "unexpected network configuration result")
	}
	doc, err := vnetconfig.Map(res.config)
	if err != nil {
		return nil, err
	}
	out, err := vnetconfig.NewContext(doc, res.status, c.params.Description)
	if err != nil {
		return nil, err
	}

	if c.params.ExportToFile != "" {
		if err := out.ExportToFile(c.params.ExportToFile); err != nil {
			return nil, err
		}
		c.logger.Infof(ctx, "Network configuration exported to '%s'", c.params.ExportToFile)
	}
	return out, nil
}

var _ ports.Command = (*GetConfigCommand)(nil)
