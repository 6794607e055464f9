package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olusolaa/azmgmt/internal/core/domain"
	portsmocks "github.com/olusolaa/azmgmt/internal/core/ports/mocks"
	"github.com/olusolaa/azmgmt/internal/errors"
)

func TestComponentRegistry(t *testing.T) {
	r := NewComponentRegistry()
	deployments := portsmocks.NewDeploymentClient(t)

	require.NoError(t, r.RegisterClient(domain.KindDeployment, deployments))

	got, err := r.DeploymentClient()
	require.NoError(t, err)
	assert.Same(t, deployments, got)

	err = r.RegisterClient(domain.KindDeployment, deployments)
	assert.True(t, errors.Is(err, errors.CodeInternal))

	_, err = r.NetworkClient()
	assert.True(t, errors.Is(err, errors.CodeNotImplemented))
}

func TestComponentRegistry_RejectsInvalidRegistrations(t *testing.T) {
	r := NewComponentRegistry()

	assert.Error(t, r.RegisterClient(domain.KindDeployment, nil))
	assert.Error(t, r.RegisterClient("", portsmocks.NewWebsiteClient(t)))
}

func TestComponentRegistry_WrongTypeForKind(t *testing.T) {
	r := NewComponentRegistry()
	require.NoError(t, r.RegisterClient(domain.KindNetworkConfig, portsmocks.NewWebsiteClient(t)))

	_, err := r.NetworkClient()
	assert.True(t, errors.Is(err, errors.CodeInternal))
}
