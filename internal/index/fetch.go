// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package index

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/litreview/pkg/types"
)

// FetchResult holds the outcome of one fetch in a multi-paper operation.
type FetchResult struct {
	ID    string
	Paper types.Paper
	Err   error
}

// FetchAll resolves the given ids concurrently, with at most limit fetches
// in flight at once. Results are returned in input order. Individual
// failures are recorded per id and never abort sibling fetches; the caller
// decides how to degrade.
func FetchAll(ctx context.Context, client Client, ids []string, limit int) []FetchResult {
	if limit <= 0 {
		limit = 4
	}

	results := make([]FetchResult, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			paper, err := client.GetByID(gctx, id)
			results[i] = FetchResult{ID: id, Paper: paper, Err: err}
			return nil
		})
	}

	// Goroutines never return errors, so Wait only synchronizes.
	g.Wait()
	return results
}
