package shared

import (
	"context"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/google/uuid"

	"github.com/olusolaa/azmgmt/internal/core/domain"
	"github.com/olusolaa/azmgmt/internal/core/ports"
)

const ClientRequestIDHeader = "x-ms-client-request-id"

// RateLimiter paces calls to the Azure management API.
type RateLimiter interface {
	Wait(ctx context.Context, logger ports.Logger) error
}

// ErrorHandler turns an Azure SDK error into an application error.
type ErrorHandler interface {
	Handle(ctx context.Context, ref domain.ResourceRef, err error) error
}

// WithClientRequestID tags every request made with the returned context with
// a fresh client request id, and returns that id.
func WithClientRequestID(ctx context.Context) (context.Context, string) {
	id := uuid.NewString()
	h := http.Header{}
	h.Set(ClientRequestIDHeader, id)
	return policy.WithHTTPHeader(ctx, h), id
}
