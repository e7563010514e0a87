// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package index talks to the remote paper index. The lookups the
// analysis pipeline needs sit behind a small interface so tests can
// substitute a mock client.
package index

import (
	"context"

	"github.com/pdiddy/litreview/pkg/types"
)

// Client is the pipeline's contract with the paper index.
type Client interface {
	// Search returns up to maxResults papers matching the query, most
	// cited first. A positive yearFrom restricts results to papers
	// published in that year or later. Partial abstracts are acceptable.
	Search(ctx context.Context, query string, maxResults, yearFrom int) ([]types.Paper, error)

	// GetByID resolves a single paper. Unknown identifiers fail with an
	// error matching types.ErrPaperNotFound.
	GetByID(ctx context.Context, paperID string) (types.Paper, error)

	// GetCitations returns up to maxResults work identifiers on one side
	// of the citation relation. Direction must be DirectionReferences or
	// DirectionCitedBy; DirectionBoth is resolved by the graph builder
	// with two calls.
	GetCitations(ctx context.Context, paperID string, direction types.CitationDirection, maxResults int) ([]string, error)
}
