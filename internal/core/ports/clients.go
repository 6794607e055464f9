package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/olusolaa/azmgmt/internal/core/domain"
)

//go:generate mockery --name DeploymentClient --output ./mocks --outpkg mocks --case underscore
//go:generate mockery --name NetworkClient --output ./mocks --outpkg mocks --case underscore
//go:generate mockery --name TrafficManagerClient --output ./mocks --outpkg mocks --case underscore
//go:generate mockery --name AutomationClient --output ./mocks --outpkg mocks --case underscore
//go:generate mockery --name WebsiteClient --output ./mocks --outpkg mocks --case underscore

type DeploymentClient interface {
	// CancelDeployment cancels deploymentName, or the running deployment of
	// the group when deploymentName is empty. It returns the cancelled name.
	CancelDeployment(ctx context.Context, resourceGroup, deploymentName string) (string, error)
	ListDeployments(ctx context.Context, resourceGroup string) ([]domain.Deployment, error)
}

type NetworkClient interface {
	// GetConfiguration returns nil and a RESOURCE_NOT_FOUND error when the
	// subscription has no network configuration.
	GetConfiguration(ctx context.Context, resourceGroup string) (*domain.NetworkConfiguration, error)
	GetOperationStatus(ctx context.Context, requestID string) (domain.OperationStatus, error)
}

type TrafficManagerClient interface {
	GetProfile(ctx context.Context, resourceGroup, name string) (*domain.TrafficProfile, error)
	UpdateProfile(ctx context.Context, profile domain.TrafficProfile) (*domain.TrafficProfile, error)
}

type AutomationClient interface {
	SuspendJob(ctx context.Context, resourceGroup, account string, id uuid.UUID) error
}

type WebsiteClient interface {
	// FindSite returns the resource group hosting the named site.
	FindSite(ctx context.Context, name string) (string, error)
	ListDeployments(ctx context.Context, resourceGroup, site string) ([]domain.WebsiteDeployment, error)
	ListDeploymentLogs(ctx context.Context, resourceGroup, site, deploymentID string) ([]domain.WebsiteLog, error)
}
