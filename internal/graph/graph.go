// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package graph builds one-hop citation graphs around a root paper.
package graph

import (
	"context"
	"fmt"

	"github.com/pdiddy/litreview/internal/index"
	"github.com/pdiddy/litreview/pkg/types"
)

// DefaultMaxPerDirection caps neighbors fetched on each side of the root.
const DefaultMaxPerDirection = 10

// Builder assembles citation graphs from the paper index.
type Builder struct {
	index         index.Client
	maxConcurrent int
}

// NewBuilder wires a builder to an index client. maxConcurrent bounds
// parallel metadata fetches; zero or negative uses the fetch default.
func NewBuilder(client index.Client, maxConcurrent int) *Builder {
	return &Builder{index: client, maxConcurrent: maxConcurrent}
}

// arena holds deduplicated nodes with an id lookup. Insertion order is
// preserved, so the root is always node zero.
type arena struct {
	nodes []types.CitationNode
	byID  map[string]int
}

func newArena() *arena {
	return &arena{byID: make(map[string]int)}
}

// add inserts a node unless its id is already present.
func (a *arena) add(node types.CitationNode) {
	if _, ok := a.byID[node.ID]; ok {
		return
	}
	a.byID[node.ID] = len(a.nodes)
	a.nodes = append(a.nodes, node)
}

// Build fetches the root paper and its neighbors in the requested
// direction, then assembles a deduplicated graph. Neighbors whose
// metadata cannot be fetched are omitted along with their edges. With
// DirectionBoth a failed cited-by lookup degrades to a references-only
// graph; the root being unreachable is always an error.
func (b *Builder) Build(ctx context.Context, paperID string, direction types.CitationDirection, maxPerDirection int) (types.CitationGraph, error) {
	if maxPerDirection <= 0 {
		maxPerDirection = DefaultMaxPerDirection
	}

	root, err := b.index.GetByID(ctx, paperID)
	if err != nil {
		return types.CitationGraph{}, fmt.Errorf("fetching root paper: %w", err)
	}

	nodes := newArena()
	nodes.add(types.CitationNode{ID: root.ID, Title: root.Title, Year: root.Year})

	var edges []types.CitationEdge
	seen := make(map[types.CitationEdge]struct{})
	addEdge := func(e types.CitationEdge) {
		if _, ok := seen[e]; ok {
			return
		}
		seen[e] = struct{}{}
		edges = append(edges, e)
	}

	wantRefs := direction == types.DirectionReferences || direction == types.DirectionBoth
	wantCited := direction == types.DirectionCitedBy || direction == types.DirectionBoth
	if !wantRefs && !wantCited {
		return types.CitationGraph{}, fmt.Errorf("%w: unknown citation direction %q", types.ErrInvalidInput, direction)
	}

	if wantRefs {
		refs := root.ReferencedWorks
		if len(refs) > maxPerDirection {
			refs = refs[:maxPerDirection]
		}
		for _, result := range index.FetchAll(ctx, b.index, refs, b.maxConcurrent) {
			if result.Err != nil {
				continue
			}
			p := result.Paper
			nodes.add(types.CitationNode{ID: p.ID, Title: p.Title, Year: p.Year})
			addEdge(types.CitationEdge{FromID: root.ID, ToID: p.ID, Direction: types.DirectionReferences})
		}
	}

	if wantCited {
		citing, err := b.index.GetCitations(ctx, root.ID, types.DirectionCitedBy, maxPerDirection)
		if err != nil {
			// With DirectionBoth the references side already made it
			// into the graph, so a cited-by lookup failure degrades to
			// a references-only graph.
			if direction == types.DirectionCitedBy {
				return types.CitationGraph{}, fmt.Errorf("listing citing papers: %w", err)
			}
		} else {
			for _, result := range index.FetchAll(ctx, b.index, citing, b.maxConcurrent) {
				if result.Err != nil {
					continue
				}
				p := result.Paper
				nodes.add(types.CitationNode{ID: p.ID, Title: p.Title, Year: p.Year})
				addEdge(types.CitationEdge{FromID: p.ID, ToID: root.ID, Direction: types.DirectionCitedBy})
			}
		}
	}

	return types.CitationGraph{RootID: root.ID, Nodes: nodes.nodes, Edges: edges}, nil
}
