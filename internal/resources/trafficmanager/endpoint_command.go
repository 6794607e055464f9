package trafficmanager

import (
	"context"

	"github.com/olusolaa/azmgmt/internal/core/domain"
	"github.com/olusolaa/azmgmt/internal/core/ports"
	"github.com/olusolaa/azmgmt/internal/core/service"
	"github.com/olusolaa/azmgmt/internal/errors"
	"github.com/olusolaa/azmgmt/internal/output/trafficmanager"
	"github.com/olusolaa/azmgmt/internal/resources/helper"
)

type SetEndpointParams struct {
	ResourceGroup string `validate:"required"`
	ProfileName   string `validate:"required"`
	DomainName    string `validate:"required"`
	// Optional fields are nil when the flag was not given.
	Location *string
	Type     *string
	Status   *string
	Weight   *int64
}

// SetEndpointCommand updates the endpoint of a traffic-manager profile with
// the given domain name, or adds it when the profile has none.
type SetEndpointCommand struct {
	params SetEndpointParams
	client ports.TrafficManagerClient
	logger ports.Logger
}

func NewSetEndpointCommand(params SetEndpointParams, client ports.TrafficManagerClient, logger ports.Logger) *SetEndpointCommand {
	return &SetEndpointCommand{params: params, client: client, logger: logger}
}

func (c *SetEndpointCommand) Spec() domain.CommandSpec {
	return domain.CommandSpec{Name: "trafficmanager endpoint set", Kind: domain.VerbWrite, RequiresTarget: true}
}

func (c *SetEndpointCommand) Validate(ctx context.Context) error {
	return helper.ValidateParams(ctx, c.params)
}

func (c *SetEndpointCommand) Confirmation() domain.Confirmation { return domain.Confirmation{} }

func (c *SetEndpointCommand) draft() domain.EndpointDraft {
	domainName := c.params.DomainName
	return domain.EndpointDraft{
		DomainName: &domainName,
		Location:   c.params.Location,
		Type:       c.params.Type,
		Status:     c.params.Status,
		Weight:     c.params.Weight,
	}
}

func (c *SetEndpointCommand) Invoke(ctx context.Context) (any, error) {
	profile, err := c.client.GetProfile(ctx, c.params.ResourceGroup, c.params.ProfileName)
	if err != nil {
		return nil, err
	}

	merged, created, err := service.ApplyEndpointDraft(*profile, c.draft())
	if err != nil {
		return nil, err
	}
	if created {
		c.logger.WithFields(map[string]any{
			domain.FieldResourceKind:  domain.KindTrafficEndpoint,
			domain.FieldResourceGroup: c.params.ResourceGroup,
			domain.FieldName:          c.params.DomainName,
		}).Debugf(ctx, "endpoint does not exist, adding: %s", c.params.DomainName)
	}

	return c.client.UpdateProfile(ctx, merged)
}

func (c *SetEndpointCommand) Map(_ context.Context, raw any) (any, error) {
	profile, ok := raw.(*domain.TrafficProfile)
	if !ok || profile == nil {
		return nil, errors.New(errors.CodeMappingError, "unexpected traffic manager profile result")
	}
	return trafficmanager.MapProfile(*profile), nil
}

var _ ports.Command = (*SetEndpointCommand)(nil)
