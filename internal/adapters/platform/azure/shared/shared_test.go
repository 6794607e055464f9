package shared

import (
	"context"
	"fmt"
	"testing"

	azruntime "github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olusolaa/azmgmt/internal/core/ports"
	"github.com/olusolaa/azmgmt/internal/log"
)

type page struct {
	items []*string
	last  bool
}

type noWait struct{ calls int }

func (n *noWait) Wait(context.Context, ports.Logger) error {
	n.calls++
	return nil
}

func pagerOf(pages ...page) *azruntime.Pager[page] {
	i := 0
	return azruntime.NewPager(azruntime.PagingHandler[page]{
		More: func(p page) bool { return !p.last },
		Fetcher: func(context.Context, *page) (page, error) {
			p := pages[i]
			i++
			return p, nil
		},
	})
}

func str(s string) *string { return &s }

func TestCollectPages(t *testing.T) {
	limiter := &noWait{}
	pager := pagerOf(
		page{items: []*string{str("a"), nil, str("b")}},
		page{items: []*string{str("c")}, last: true},
	)

	got, err := CollectPages(context.Background(), pager, limiter, log.Nop(), func(p page) []*string { return p.items })

	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "a", *got[0])
	assert.Equal(t, "c", *got[2])
	assert.Equal(t, 2, limiter.calls)
}

func TestCollectPages_FetchError(t *testing.T) {
	pager := azruntime.NewPager(azruntime.PagingHandler[page]{
		More: func(page) bool { return false },
		Fetcher: func(context.Context, *page) (page, error) {
			return page{}, fmt.Errorf("throttled")
		},
	})

	_, err := CollectPages(context.Background(), pager, &noWait{}, log.Nop(), func(p page) []*string { return p.items })

	assert.EqualError(t, err, "throttled")
}

func TestWithClientRequestID(t *testing.T) {
	ctx, id := WithClientRequestID(context.Background())

	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.NotEqual(t, context.Background(), ctx)

	_, other := WithClientRequestID(context.Background())
	assert.NotEqual(t, id, other)
}
