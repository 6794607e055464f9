package deployment

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/olusolaa/azmgmt/internal/core/domain"
	portsmocks "github.com/olusolaa/azmgmt/internal/core/ports/mocks"
	"github.com/olusolaa/azmgmt/internal/core/service"
	"github.com/olusolaa/azmgmt/internal/errors"
	"github.com/olusolaa/azmgmt/internal/log"
)

func newDispatcher(t *testing.T) (*service.Dispatcher, *portsmocks.Prompter, *portsmocks.Emitter) {
	prompter := portsmocks.NewPrompter(t)
	emitter := portsmocks.NewEmitter(t)
	d, err := service.NewDispatcher(prompter, emitter, log.Nop())
	require.NoError(t, err)
	return d, prompter, emitter
}

func TestStop_Confirmed(t *testing.T) {
	ctx := context.Background()
	d, prompter, emitter := newDispatcher(t)
	client := portsmocks.NewDeploymentClient(t)

	prompter.On("Confirm", mock.Anything,
		"Are you sure you want to cancel the deployment in resource group 'rg1'?",
		"Cancelling running deployment").Return(true, nil).Once()
	client.On("CancelDeployment", mock.Anything, "rg1", "").Return("release-42", nil).Once()
	emitter.On("Emit", mock.Anything, true).Return(nil).Once()

	cmd := NewStopCommand(StopParams{ResourceGroup: "rg1", PassThru: true}, client, log.Nop())
	outcome, err := d.Run(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeCompleted, outcome.Status)
}

func TestStop_Declined(t *testing.T) {
	d, prompter, emitter := newDispatcher(t)
	client := portsmocks.NewDeploymentClient(t)
	prompter.On("Confirm", mock.Anything, mock.Anything, mock.Anything).Return(false, nil).Once()
	emitter.On("Emit", mock.Anything, false).Return(nil).Once()

	cmd := NewStopCommand(StopParams{ResourceGroup: "rg1", PassThru: true}, client, log.Nop())
	outcome, err := d.Run(context.Background(), cmd)

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeSkipped, outcome.Status)
	client.AssertNotCalled(t, "CancelDeployment", mock.Anything, mock.Anything, mock.Anything)
}

func TestStop_ForceSkipsPrompt(t *testing.T) {
	d, prompter, _ := newDispatcher(t)
	client := portsmocks.NewDeploymentClient(t)
	client.On("CancelDeployment", mock.Anything, "rg1", "release-1").Return("release-1", nil).Once()

	cmd := NewStopCommand(StopParams{ResourceGroup: "rg1", Name: "release-1", Force: true}, client, log.Nop())
	outcome, err := d.Run(context.Background(), cmd)

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeCompleted, outcome.Status)
	assert.Nil(t, outcome.Value)
	prompter.AssertNotCalled(t, "Confirm", mock.Anything, mock.Anything, mock.Anything)
}

func TestStop_NothingRunningIsFatal(t *testing.T) {
	d, _, _ := newDispatcher(t)
	client := portsmocks.NewDeploymentClient(t)
	client.On("CancelDeployment", mock.Anything, "rg1", "").
		Return("", errors.NewUserFacing(errors.CodeResourceNotFound, "no running deployment found in resource group 'rg1'", "")).Once()

	cmd := NewStopCommand(StopParams{ResourceGroup: "rg1", Force: true}, client, log.Nop())
	_, err := d.Run(context.Background(), cmd)

	assert.True(t, errors.IsNotFound(err))
}

func TestStop_RequiresResourceGroup(t *testing.T) {
	d, _, _ := newDispatcher(t)
	client := portsmocks.NewDeploymentClient(t)

	_, err := d.Run(context.Background(), NewStopCommand(StopParams{Force: true}, client, log.Nop()))

	assert.Equal(t, errors.CodeValidation, errors.GetCode(err))
}

func TestList(t *testing.T) {
	d, _, emitter := newDispatcher(t)
	client := portsmocks.NewDeploymentClient(t)
	deployments := []domain.Deployment{{Name: "a", ProvisioningState: "Succeeded"}}
	client.On("ListDeployments", mock.Anything, "rg1").Return(deployments, nil).Once()
	emitter.On("Emit", mock.Anything, deployments).Return(nil).Once()

	outcome, err := d.Run(context.Background(), NewListCommand(ListParams{ResourceGroup: "rg1"}, client))

	require.NoError(t, err)
	assert.Equal(t, deployments, outcome.Value)
}

func TestList_GroupNotFoundEmitsNothing(t *testing.T) {
	d, _, _ := newDispatcher(t)
	client := portsmocks.NewDeploymentClient(t)
	client.On("ListDeployments", mock.Anything, "gone").
		Return(nil, errors.New(errors.CodeResourceNotFound, "resource group deployments 'gone' not found")).Once()

	outcome, err := d.Run(context.Background(), NewListCommand(ListParams{ResourceGroup: "gone"}, client))

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeNotFound, outcome.Status)
}

func TestStop_LogsCancelledTarget(t *testing.T) {
	var buf bytes.Buffer
	logger, err := log.NewLogger(log.Config{Level: log.LevelInfo, Format: log.FormatJSON, Output: &buf})
	require.NoError(t, err)
	client := portsmocks.NewDeploymentClient(t)
	client.On("CancelDeployment", mock.Anything, "rg1", "").Return("release-2", nil).Once()

	name, err := NewStopCommand(StopParams{ResourceGroup: "rg1"}, client, logger).Invoke(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "release-2", name)
	assert.Contains(t, buf.String(), `"resource_group":"rg1"`)
	assert.Contains(t, buf.String(), `"name":"release-2"`)
}
