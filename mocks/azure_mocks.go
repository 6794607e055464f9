package mocks

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/appservice/armappservice/v2"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/automation/armautomation"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v4"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/trafficmanager/armtrafficmanager"
	"github.com/stretchr/testify/mock"

	"github.com/olusolaa/azmgmt/internal/core/ports"
)

// Pager serves pages in order and then stops. A non-nil err is returned by
// the first fetch instead.
func Pager[T any](err error, pages ...T) *runtime.Pager[T] {
	served := 0
	return runtime.NewPager(runtime.PagingHandler[T]{
		More: func(T) bool { return served < len(pages) },
		Fetcher: func(context.Context, *T) (T, error) {
			var zero T
			if err != nil {
				return zero, err
			}
			if served >= len(pages) {
				return zero, nil
			}
			p := pages[served]
			served++
			return p, nil
		},
	})
}

// MockDeploymentsClient is a mock implementation of the ARM deployments client
type MockDeploymentsClient struct {
	mock.Mock
}

func (m *MockDeploymentsClient) Cancel(ctx context.Context, resourceGroupName string, deploymentName string, options *armresources.DeploymentsClientCancelOptions) (armresources.DeploymentsClientCancelResponse, error) {
	args := m.Called(ctx, resourceGroupName, deploymentName, options)
	return armresources.DeploymentsClientCancelResponse{}, args.Error(0)
}

func (m *MockDeploymentsClient) NewListByResourceGroupPager(resourceGroupName string, options *armresources.DeploymentsClientListByResourceGroupOptions) *runtime.Pager[armresources.DeploymentsClientListByResourceGroupResponse] {
	args := m.Called(resourceGroupName, options)
	return args.Get(0).(*runtime.Pager[armresources.DeploymentsClientListByResourceGroupResponse])
}

// MockResourceGroupsClient is a mock implementation of the ARM resource groups client
type MockResourceGroupsClient struct {
	mock.Mock
}

func (m *MockResourceGroupsClient) NewListPager(options *armresources.ResourceGroupsClientListOptions) *runtime.Pager[armresources.ResourceGroupsClientListResponse] {
	args := m.Called(options)
	return args.Get(0).(*runtime.Pager[armresources.ResourceGroupsClientListResponse])
}

type MockVirtualNetworksClient struct {
	mock.Mock
}

func (m *MockVirtualNetworksClient) NewListPager(resourceGroupName string, options *armnetwork.VirtualNetworksClientListOptions) *runtime.Pager[armnetwork.VirtualNetworksClientListResponse] {
	args := m.Called(resourceGroupName, options)
	return args.Get(0).(*runtime.Pager[armnetwork.VirtualNetworksClientListResponse])
}

type MockLocalNetworkGatewaysClient struct {
	mock.Mock
}

func (m *MockLocalNetworkGatewaysClient) NewListPager(resourceGroupName string, options *armnetwork.LocalNetworkGatewaysClientListOptions) *runtime.Pager[armnetwork.LocalNetworkGatewaysClientListResponse] {
	args := m.Called(resourceGroupName, options)
	return args.Get(0).(*runtime.Pager[armnetwork.LocalNetworkGatewaysClientListResponse])
}

type MockVirtualNetworkGatewaysClient struct {
	mock.Mock
}

func (m *MockVirtualNetworkGatewaysClient) NewListPager(resourceGroupName string, options *armnetwork.VirtualNetworkGatewaysClientListOptions) *runtime.Pager[armnetwork.VirtualNetworkGatewaysClientListResponse] {
	args := m.Called(resourceGroupName, options)
	return args.Get(0).(*runtime.Pager[armnetwork.VirtualNetworkGatewaysClientListResponse])
}

type MockGatewayConnectionsClient struct {
	mock.Mock
}

func (m *MockGatewayConnectionsClient) NewListPager(resourceGroupName string, options *armnetwork.VirtualNetworkGatewayConnectionsClientListOptions) *runtime.Pager[armnetwork.VirtualNetworkGatewayConnectionsClientListResponse] {
	args := m.Called(resourceGroupName, options)
	return args.Get(0).(*runtime.Pager[armnetwork.VirtualNetworkGatewayConnectionsClientListResponse])
}

// MockProfilesClient is a mock implementation of the traffic manager profiles client
type MockProfilesClient struct {
	mock.Mock
}

func (m *MockProfilesClient) Get(ctx context.Context, resourceGroupName string, profileName string, options *armtrafficmanager.ProfilesClientGetOptions) (armtrafficmanager.ProfilesClientGetResponse, error) {
	args := m.Called(ctx, resourceGroupName, profileName, options)
	return args.Get(0).(armtrafficmanager.ProfilesClientGetResponse), args.Error(1)
}

func (m *MockProfilesClient) CreateOrUpdate(ctx context.Context, resourceGroupName string, profileName string, parameters armtrafficmanager.Profile, options *armtrafficmanager.ProfilesClientCreateOrUpdateOptions) (armtrafficmanager.ProfilesClientCreateOrUpdateResponse, error) {
	args := m.Called(ctx, resourceGroupName, profileName, parameters, options)
	return args.Get(0).(armtrafficmanager.ProfilesClientCreateOrUpdateResponse), args.Error(1)
}

// MockJobClient is a mock implementation of the automation job client
type MockJobClient struct {
	mock.Mock
}

func (m *MockJobClient) Suspend(ctx context.Context, resourceGroupName string, automationAccountName string, jobName string, options *armautomation.JobClientSuspendOptions) (armautomation.JobClientSuspendResponse, error) {
	args := m.Called(ctx, resourceGroupName, automationAccountName, jobName, options)
	return armautomation.JobClientSuspendResponse{}, args.Error(0)
}

// MockWebAppsClient is a mock implementation of the app service web apps client
type MockWebAppsClient struct {
	mock.Mock
}

func (m *MockWebAppsClient) NewListPager(options *armappservice.WebAppsClientListOptions) *runtime.Pager[armappservice.WebAppsClientListResponse] {
	args := m.Called(options)
	return args.Get(0).(*runtime.Pager[armappservice.WebAppsClientListResponse])
}

func (m *MockWebAppsClient) NewListDeploymentsPager(resourceGroupName string, name string, options *armappservice.WebAppsClientListDeploymentsOptions) *runtime.Pager[armappservice.WebAppsClientListDeploymentsResponse] {
	args := m.Called(resourceGroupName, name, options)
	return args.Get(0).(*runtime.Pager[armappservice.WebAppsClientListDeploymentsResponse])
}

func (m *MockWebAppsClient) ListDeploymentLog(ctx context.Context, resourceGroupName string, name string, id string, options *armappservice.WebAppsClientListDeploymentLogOptions) (armappservice.WebAppsClientListDeploymentLogResponse, error) {
	args := m.Called(ctx, resourceGroupName, name, id, options)
	return args.Get(0).(armappservice.WebAppsClientListDeploymentLogResponse), args.Error(1)
}

// NoopLimiter never blocks. It counts calls so tests can assert pacing.
type NoopLimiter struct {
	Calls int
}

func (l *NoopLimiter) Wait(ctx context.Context, _ ports.Logger) error {
	l.Calls++
	return ctx.Err()
}
