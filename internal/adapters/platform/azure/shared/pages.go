package shared

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"

	"github.com/olusolaa/azmgmt/internal/core/ports"
)

// CollectPages drains pager sequentially, waiting on limiter before every
// page, and returns the non-nil items in provider order. Errors are returned
// unwrapped so the caller can classify them.
func CollectPages[T any, E any](
	ctx context.Context,
	pager *runtime.Pager[T],
	limiter RateLimiter,
	logger ports.Logger,
	items func(T) []*E,
) ([]*E, error) {
	var out []*E
	for pager.More() {
		if err := limiter.Wait(ctx, logger); err != nil {
			return nil, err
		}
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, item := range items(page) {
			if item != nil {
				out = append(out, item)
			}
		}
	}
	return out, nil
}
