// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package index

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/litreview/pkg/types"
)

// mockClient implements Client with pluggable behavior per test.
type mockClient struct {
	getByID func(ctx context.Context, id string) (types.Paper, error)
}

func (m *mockClient) Search(ctx context.Context, query string, maxResults, yearFrom int) ([]types.Paper, error) {
	return nil, nil
}

func (m *mockClient) GetByID(ctx context.Context, id string) (types.Paper, error) {
	return m.getByID(ctx, id)
}

func (m *mockClient) GetCitations(ctx context.Context, id string, direction types.CitationDirection, maxResults int) ([]string, error) {
	return nil, nil
}

func TestFetchAll_PreservesOrder(t *testing.T) {
	client := &mockClient{
		getByID: func(_ context.Context, id string) (types.Paper, error) {
			return types.Paper{ID: id, Title: "title " + id}, nil
		},
	}

	ids := []string{"W3", "W1", "W2"}
	results := FetchAll(context.Background(), client, ids, 2)

	require.Len(t, results, 3)
	for i, id := range ids {
		assert.Equal(t, id, results[i].ID)
		assert.Equal(t, id, results[i].Paper.ID)
		assert.NoError(t, results[i].Err)
	}
}

func TestFetchAll_PartialFailure(t *testing.T) {
	client := &mockClient{
		getByID: func(_ context.Context, id string) (types.Paper, error) {
			if id == "W2" {
				return types.Paper{}, fmt.Errorf("boom: %w", types.ErrUpstreamUnavailable)
			}
			return types.Paper{ID: id}, nil
		},
	}

	results := FetchAll(context.Background(), client, []string{"W1", "W2", "W3"}, 4)

	assert.NoError(t, results[0].Err)
	assert.ErrorIs(t, results[1].Err, types.ErrUpstreamUnavailable)
	assert.NoError(t, results[2].Err)
}

func TestFetchAll_BoundsConcurrency(t *testing.T) {
	const limit = 2

	var inFlight, peak int32
	var mu sync.Mutex
	gate := make(chan struct{})

	client := &mockClient{
		getByID: func(_ context.Context, id string) (types.Paper, error) {
			n := atomic.AddInt32(&inFlight, 1)
			mu.Lock()
			if n > peak {
				peak = n
			}
			mu.Unlock()
			<-gate
			atomic.AddInt32(&inFlight, -1)
			return types.Paper{ID: id}, nil
		},
	}

	done := make(chan struct{})
	go func() {
		FetchAll(context.Background(), client, []string{"W1", "W2", "W3", "W4", "W5"}, limit)
		close(done)
	}()

	close(gate)
	<-done

	mu.Lock()
	defer mu.Unlock()
	assert.LessOrEqual(t, peak, int32(limit))
}
