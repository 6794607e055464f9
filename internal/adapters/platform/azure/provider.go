package azure

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/appservice/armappservice/v2"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/automation/armautomation"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v4"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/trafficmanager/armtrafficmanager"

	azerrors "github.com/olusolaa/azmgmt/internal/adapters/platform/azure/errors"
	"github.com/olusolaa/azmgmt/internal/adapters/platform/azure/automation"
	"github.com/olusolaa/azmgmt/internal/adapters/platform/azure/limiter"
	"github.com/olusolaa/azmgmt/internal/adapters/platform/azure/network"
	"github.com/olusolaa/azmgmt/internal/adapters/platform/azure/resources"
	"github.com/olusolaa/azmgmt/internal/adapters/platform/azure/trafficmanager"
	"github.com/olusolaa/azmgmt/internal/adapters/platform/azure/websites"
	"github.com/olusolaa/azmgmt/internal/core/domain"
	"github.com/olusolaa/azmgmt/internal/core/ports"
	"github.com/olusolaa/azmgmt/internal/core/service"
	"github.com/olusolaa/azmgmt/internal/errors"
)

const ProviderTypeAzure = "azure"

// Provider owns the credential and the ARM clients of one subscription and
// exposes them as the application's client ports.
type Provider struct {
	Deployments    *resources.DeploymentHandler
	Network        *network.NetworkHandler
	TrafficManager *trafficmanager.ProfileHandler
	Automation     *automation.JobHandler
	Websites       *websites.SiteHandler
}

// NewProvider authenticates with DefaultAzureCredential. No token is requested
// until the first call.
func NewProvider(ctx context.Context, session domain.Session, rps int, logger ports.Logger) (*Provider, error) {
	if logger == nil {
		return nil, errors.New(errors.CodeConfigValidation, "logger cannot be nil for Azure provider")
	}
	if session.SubscriptionID == "" {
		return nil, errors.NewUserFacing(errors.CodeConfigValidation, "no Azure subscription configured",
			"Set azure.subscription_id, AZMGMT_AZURE_SUBSCRIPTION_ID or --subscription.")
	}

	cred, err := azidentity.NewDefaultAzureCredential(&azidentity.DefaultAzureCredentialOptions{
		TenantID: session.TenantID,
	})
	if err != nil {
		return nil, errors.WrapUserFacing(err, errors.CodePlatformAuthError, "failed to create Azure credential",
			"Run 'az login' or set AZURE_TENANT_ID, AZURE_CLIENT_ID and AZURE_CLIENT_SECRET.")
	}

	logger.Debugf(ctx, "Creating Azure clients for subscription %s", session.SubscriptionID)
	return newProvider(session.SubscriptionID, cred, rps, logger)
}

func newProvider(subscriptionID string, cred azcore.TokenCredential, rps int, logger ports.Logger) (*Provider, error) {
	opts := &arm.ClientOptions{}
	wrap := func(err error, client string) error {
		return errors.Wrap(err, errors.CodeInternal, "failed to create Azure "+client+" client")
	}

	deploymentsClient, err := armresources.NewDeploymentsClient(subscriptionID, cred, opts)
	if err != nil {
		return nil, wrap(err, "deployments")
	}
	groupsClient, err := armresources.NewResourceGroupsClient(subscriptionID, cred, opts)
	if err != nil {
		return nil, wrap(err, "resource groups")
	}
	vnetClient, err := armnetwork.NewVirtualNetworksClient(subscriptionID, cred, opts)
	if err != nil {
		return nil, wrap(err, "virtual networks")
	}
	localGatewaysClient, err := armnetwork.NewLocalNetworkGatewaysClient(subscriptionID, cred, opts)
	if err != nil {
		return nil, wrap(err, "local network gateways")
	}
	gatewaysClient, err := armnetwork.NewVirtualNetworkGatewaysClient(subscriptionID, cred, opts)
	if err != nil {
		return nil, wrap(err, "virtual network gateways")
	}
	connectionsClient, err := armnetwork.NewVirtualNetworkGatewayConnectionsClient(subscriptionID, cred, opts)
	if err != nil {
		return nil, wrap(err, "gateway connections")
	}
	profilesClient, err := armtrafficmanager.NewProfilesClient(subscriptionID, cred, opts)
	if err != nil {
		return nil, wrap(err, "traffic manager profiles")
	}
	jobClient, err := armautomation.NewJobClient(subscriptionID, cred, opts)
	if err != nil {
		return nil, wrap(err, "automation jobs")
	}
	webAppsClient, err := armappservice.NewWebAppsClient(subscriptionID, cred, opts)
	if err != nil {
		return nil, wrap(err, "web apps")
	}

	lim := limiter.New(rps, logger)
	errHandler := &azerrors.DefaultErrorHandler{}
	provLog := logger.WithFields(map[string]any{domain.FieldProvider: ProviderTypeAzure})

	return &Provider{
		Deployments: resources.NewDeploymentHandler(deploymentsClient, lim, errHandler, provLog),
		Network: network.NewNetworkHandler(network.Clients{
			VirtualNetworks: vnetClient,
			LocalGateways:   localGatewaysClient,
			Gateways:        gatewaysClient,
			Connections:     connectionsClient,
			Groups:          resources.NewGroupLister(groupsClient, lim, errHandler, provLog),
		}, lim, errHandler, provLog),
		TrafficManager: trafficmanager.NewProfileHandler(profilesClient, lim, errHandler, provLog),
		Automation:     automation.NewJobHandler(jobClient, lim, errHandler, provLog),
		Websites:       websites.NewSiteHandler(webAppsClient, lim, errHandler, provLog),
	}, nil
}

// Register adds every client port of the provider to the registry.
func (p *Provider) Register(registry *service.ComponentRegistry) error {
	clients := []struct {
		kind   domain.ResourceKind
		client any
	}{
		{domain.KindDeployment, p.Deployments},
		{domain.KindNetworkConfig, p.Network},
		{domain.KindTrafficProfile, p.TrafficManager},
		{domain.KindAutomationJob, p.Automation},
		{domain.KindWebsiteDeployment, p.Websites},
	}
	for _, c := range clients {
		if err := registry.RegisterClient(c.kind, c.client); err != nil {
			return err
		}
	}
	return nil
}

var (
	_ ports.DeploymentClient     = (*resources.DeploymentHandler)(nil)
	_ ports.NetworkClient        = (*network.NetworkHandler)(nil)
	_ ports.TrafficManagerClient = (*trafficmanager.ProfileHandler)(nil)
	_ ports.AutomationClient     = (*automation.JobHandler)(nil)
	_ ports.WebsiteClient        = (*websites.SiteHandler)(nil)
)
