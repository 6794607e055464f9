package automation

import (
	"context"
	"net/http"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/automation/armautomation"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	azerrors "github.com/olusolaa/azmgmt/internal/adapters/platform/azure/errors"
	apperrors "github.com/olusolaa/azmgmt/internal/errors"
	"github.com/olusolaa/azmgmt/internal/log"
	"github.com/olusolaa/azmgmt/mocks"
)

var jobID = uuid.MustParse("6e1f3c2a-9b7d-4c35-8f0e-2d4a1b5c7e90")

func TestSuspendJob(t *testing.T) {
	api := &mocks.MockJobClient{}
	api.On("Suspend", mock.Anything, "rg1", "acct", jobID.String(), mock.MatchedBy(func(o *armautomation.JobClientSuspendOptions) bool {
		if o == nil || o.ClientRequestID == nil {
			return false
		}
		_, err := uuid.Parse(*o.ClientRequestID)
		return err == nil
	})).Return(nil)
	lim := &mocks.NoopLimiter{}
	h := NewJobHandler(api, lim, &azerrors.DefaultErrorHandler{}, log.Nop())

	err := h.SuspendJob(context.Background(), "rg1", "acct", jobID)

	require.NoError(t, err)
	assert.Equal(t, 1, lim.Calls)
	api.AssertExpectations(t)
}

func TestSuspendJob_NotFound(t *testing.T) {
	api := &mocks.MockJobClient{}
	api.On("Suspend", mock.Anything, "rg1", "acct", jobID.String(), mock.Anything).
		Return(&azcore.ResponseError{StatusCode: http.StatusNotFound, ErrorCode: "NotFound"})
	h := NewJobHandler(api, &mocks.NoopLimiter{}, &azerrors.DefaultErrorHandler{}, log.Nop())

	err := h.SuspendJob(context.Background(), "rg1", "acct", jobID)

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	assert.Contains(t, err.Error(), jobID.String())
}
