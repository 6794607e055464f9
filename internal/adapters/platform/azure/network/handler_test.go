package network

import (
	"context"
	"fmt"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	azerrors "github.com/olusolaa/azmgmt/internal/adapters/platform/azure/errors"
	apperrors "github.com/olusolaa/azmgmt/internal/errors"
	"github.com/olusolaa/azmgmt/internal/log"
	"github.com/olusolaa/azmgmt/mocks"
)

type staticGroups struct {
	groups []string
	err    error
}

func (s staticGroups) ListResourceGroups(context.Context) ([]string, error) {
	return s.groups, s.err
}

type networkMocks struct {
	vnets   *mocks.MockVirtualNetworksClient
	locals  *mocks.MockLocalNetworkGatewaysClient
	gws     *mocks.MockVirtualNetworkGatewaysClient
	conns   *mocks.MockGatewayConnectionsClient
	limiter *mocks.NoopLimiter
}

func newTestHandler(groups GroupLister) (*NetworkHandler, networkMocks) {
	m := networkMocks{
		vnets:   &mocks.MockVirtualNetworksClient{},
		locals:  &mocks.MockLocalNetworkGatewaysClient{},
		gws:     &mocks.MockVirtualNetworkGatewaysClient{},
		conns:   &mocks.MockGatewayConnectionsClient{},
		limiter: &mocks.NoopLimiter{},
	}
	h := NewNetworkHandler(Clients{
		VirtualNetworks: m.vnets,
		LocalGateways:   m.locals,
		Gateways:        m.gws,
		Connections:     m.conns,
		Groups:          groups,
	}, m.limiter, &azerrors.DefaultErrorHandler{}, log.Nop())
	return h, m
}

func (m networkMocks) expectGroup(rg string, vnets ...*armnetwork.VirtualNetwork) {
	m.vnets.On("NewListPager", rg, mock.Anything).Return(mocks.Pager[armnetwork.VirtualNetworksClientListResponse](nil,
		armnetwork.VirtualNetworksClientListResponse{VirtualNetworkListResult: armnetwork.VirtualNetworkListResult{Value: vnets}}))
	m.locals.On("NewListPager", rg, mock.Anything).Return(mocks.Pager[armnetwork.LocalNetworkGatewaysClientListResponse](nil,
		armnetwork.LocalNetworkGatewaysClientListResponse{}))
	m.gws.On("NewListPager", rg, mock.Anything).Return(mocks.Pager[armnetwork.VirtualNetworkGatewaysClientListResponse](nil,
		armnetwork.VirtualNetworkGatewaysClientListResponse{}))
	m.conns.On("NewListPager", rg, mock.Anything).Return(mocks.Pager[armnetwork.VirtualNetworkGatewayConnectionsClientListResponse](nil,
		armnetwork.VirtualNetworkGatewayConnectionsClientListResponse{}))
}

func TestGetConfiguration_SingleGroup(t *testing.T) {
	h, m := newTestHandler(staticGroups{err: fmt.Errorf("must not be called")})
	m.expectGroup("rg1", testVNet())

	cfg, err := h.GetConfiguration(context.Background(), "rg1")

	require.NoError(t, err)
	require.Len(t, cfg.VirtualNetworkSites, 1)
	assert.Equal(t, "vnet-a", cfg.VirtualNetworkSites[0].Name)
	assert.NotEmpty(t, cfg.RequestID)
	assert.Equal(t, 4, m.limiter.Calls)
	m.vnets.AssertExpectations(t)
	m.conns.AssertExpectations(t)
}

func TestGetConfiguration_AllGroups(t *testing.T) {
	second := testVNet()
	second.Name = to.Ptr("vnet-b")
	h, m := newTestHandler(staticGroups{groups: []string{"rg1", "rg2"}})
	m.expectGroup("rg1", testVNet())
	m.expectGroup("rg2", second)

	cfg, err := h.GetConfiguration(context.Background(), "")

	require.NoError(t, err)
	require.Len(t, cfg.VirtualNetworkSites, 2)
	assert.Equal(t, "vnet-a", cfg.VirtualNetworkSites[0].Name)
	assert.Equal(t, "vnet-b", cfg.VirtualNetworkSites[1].Name)
}

func TestGetConfiguration_GroupListFails(t *testing.T) {
	boom := apperrors.New(apperrors.CodePlatformAPIError, "boom")
	h, _ := newTestHandler(staticGroups{err: boom})

	_, err := h.GetConfiguration(context.Background(), "")

	assert.ErrorIs(t, err, boom)
}

func TestGetConfiguration_ListFails(t *testing.T) {
	h, m := newTestHandler(nil)
	m.vnets.On("NewListPager", "rg1", mock.Anything).Return(
		mocks.Pager[armnetwork.VirtualNetworksClientListResponse](fmt.Errorf("connection reset")))

	_, err := h.GetConfiguration(context.Background(), "rg1")

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodePlatformAPIError))
	m.locals.AssertNotCalled(t, "NewListPager", mock.Anything, mock.Anything)
}

func TestGetOperationStatus(t *testing.T) {
	h, _ := newTestHandler(nil)

	status, err := h.GetOperationStatus(context.Background(), "req-1")

	require.NoError(t, err)
	assert.Equal(t, "req-1", status.ID)
	assert.Equal(t, "Succeeded", status.Status)
}

func TestGetConfiguration_Empty(t *testing.T) {
	h, m := newTestHandler(nil)
	m.expectGroup("rg1")

	cfg, err := h.GetConfiguration(context.Background(), "rg1")

	assert.Nil(t, cfg)
	assert.True(t, apperrors.IsNotFound(err))
}
