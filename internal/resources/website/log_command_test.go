package website

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/olusolaa/azmgmt/internal/core/domain"
	portsmocks "github.com/olusolaa/azmgmt/internal/core/ports/mocks"
	"github.com/olusolaa/azmgmt/internal/core/service"
	"github.com/olusolaa/azmgmt/internal/errors"
	"github.com/olusolaa/azmgmt/internal/log"
	"github.com/olusolaa/azmgmt/internal/output/weblog"
)

var (
	older = domain.WebsiteDeployment{ID: "old", StartTime: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)}
	newer = domain.WebsiteDeployment{ID: "new", StartTime: time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)}
)

func run(t *testing.T, params LogParams, setup func(*portsmocks.WebsiteClient, *portsmocks.Emitter)) (domain.Outcome, error) {
	t.Helper()
	client := portsmocks.NewWebsiteClient(t)
	emitter := portsmocks.NewEmitter(t)
	setup(client, emitter)
	d, err := service.NewDispatcher(nil, emitter, log.Nop())
	require.NoError(t, err)
	return d.Run(context.Background(), NewLogCommand(params, client, log.Nop()))
}

func TestLog_LatestDeployment(t *testing.T) {
	outcome, err := run(t, LogParams{Name: "shop", ResourceGroup: "rg1"}, func(c *portsmocks.WebsiteClient, e *portsmocks.Emitter) {
		c.On("ListDeployments", mock.Anything, "rg1", "shop").Return([]domain.WebsiteDeployment{older, newer}, nil).Once()
		c.On("ListDeploymentLogs", mock.Anything, "rg1", "shop", "new").Return([]domain.WebsiteLog{
			{ID: "new-1", Message: "Fetching changes."},
			{ID: "new-2", Message: "Deployment successful.", Type: 0},
		}, nil).Once()
		e.On("Emit", mock.Anything, mock.Anything).Return(nil).Once()
	})

	require.NoError(t, err)
	entries := outcome.Value.([]weblog.Entry)
	require.Len(t, entries, 2)
	assert.Equal(t, "new", entries[0].DeploymentID)
	assert.Equal(t, "Fetching changes.", entries[0].Message)
	assert.Equal(t, weblog.LogTypeMessage, entries[1].Type)
}

func TestLog_FindsResourceGroup(t *testing.T) {
	_, err := run(t, LogParams{Name: "shop"}, func(c *portsmocks.WebsiteClient, e *portsmocks.Emitter) {
		c.On("FindSite", mock.Anything, "shop").Return("web-rg", nil).Once()
		c.On("ListDeployments", mock.Anything, "web-rg", "shop").Return([]domain.WebsiteDeployment{newer}, nil).Once()
		c.On("ListDeploymentLogs", mock.Anything, "web-rg", "shop", "new").Return([]domain.WebsiteLog{}, nil).Once()
		e.On("Emit", mock.Anything, []weblog.Entry{}).Return(nil).Once()
	})

	require.NoError(t, err)
}

func TestLog_SiteNotFoundEmitsNothing(t *testing.T) {
	outcome, err := run(t, LogParams{Name: "ghost"}, func(c *portsmocks.WebsiteClient, _ *portsmocks.Emitter) {
		c.On("FindSite", mock.Anything, "ghost").
			Return("", errors.New(errors.CodeResourceNotFound, "web app 'ghost' not found in subscription")).Once()
	})

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeNotFound, outcome.Status)
}

func TestLog_NoDeploymentsEmitsNothing(t *testing.T) {
	outcome, err := run(t, LogParams{Name: "shop", ResourceGroup: "rg1"}, func(c *portsmocks.WebsiteClient, _ *portsmocks.Emitter) {
		c.On("ListDeployments", mock.Anything, "rg1", "shop").Return([]domain.WebsiteDeployment{}, nil).Once()
	})

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeNotFound, outcome.Status)
}

func TestLog_RequiresName(t *testing.T) {
	_, err := run(t, LogParams{}, func(*portsmocks.WebsiteClient, *portsmocks.Emitter) {})

	assert.Equal(t, errors.CodeValidation, errors.GetCode(err))
}
