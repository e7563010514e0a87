// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline exposes the paper-analysis operations as one service:
// search, abstract lookup, claim extraction, comparison, citation graphs,
// and research-gap synthesis.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/litreview/internal/claims"
	"github.com/pdiddy/litreview/internal/compare"
	"github.com/pdiddy/litreview/internal/gaps"
	"github.com/pdiddy/litreview/internal/graph"
	"github.com/pdiddy/litreview/internal/index"
	"github.com/pdiddy/litreview/pkg/types"
)

// Service runs analysis operations against a paper index.
type Service struct {
	index     index.Client
	extractor *claims.Extractor
	cmp       *compare.Comparator
	synth     *gaps.Synthesizer
	graphs    *graph.Builder
	warn      io.Writer
	fetchers  int
}

// New assembles a service. warn receives degradation notices (papers
// dropped from a comparison); nil discards them. maxConcurrent bounds
// parallel metadata fetches.
func New(client index.Client, vocab claims.Vocabulary, cfg types.AnalysisConfig, maxConcurrent int, warn io.Writer) *Service {
	if warn == nil {
		warn = io.Discard
	}
	return &Service{
		index:     client,
		extractor: claims.NewExtractor(vocab),
		cmp:       compare.New(cfg),
		synth:     gaps.NewSynthesizer(cfg),
		graphs:    graph.NewBuilder(client, maxConcurrent),
		warn:      warn,
		fetchers:  maxConcurrent,
	}
}

// ParseDirection maps a direction string to its typed value.
func ParseDirection(s string) (types.CitationDirection, error) {
	switch types.CitationDirection(strings.ToLower(strings.TrimSpace(s))) {
	case types.DirectionReferences:
		return types.DirectionReferences, nil
	case types.DirectionCitedBy:
		return types.DirectionCitedBy, nil
	case types.DirectionBoth:
		return types.DirectionBoth, nil
	}
	return "", fmt.Errorf("%w: direction must be references, cited_by, or both, got %q", types.ErrInvalidInput, s)
}

// Search queries the index by topic.
func (s *Service) Search(ctx context.Context, query string, maxResults, yearFrom int) ([]types.Paper, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%w: empty search query", types.ErrInvalidInput)
	}
	return s.index.Search(ctx, query, maxResults, yearFrom)
}

// GetAbstract fetches one paper's metadata and abstract.
func (s *Service) GetAbstract(ctx context.Context, paperID string) (types.Paper, error) {
	return s.index.GetByID(ctx, paperID)
}

// ExtractClaims fetches a paper and classifies its abstract sentences.
// A paper without an abstract yields an empty claim list, not an error.
func (s *Service) ExtractClaims(ctx context.Context, paperID string) ([]types.Claim, error) {
	paper, err := s.index.GetByID(ctx, paperID)
	if err != nil {
		return nil, err
	}
	return s.extractor.Extract(paper), nil
}

// ComparePapers fetches 2 to 5 distinct papers, extracts their claims,
// and relates them. Papers that cannot be fetched are dropped with a
// warning; the comparison proceeds as long as at least two survive.
func (s *Service) ComparePapers(ctx context.Context, paperIDs []string) (types.ComparisonResult, error) {
	if len(paperIDs) < compare.MinPapers || len(paperIDs) > compare.MaxPapers {
		return types.ComparisonResult{}, fmt.Errorf("%w: comparison needs %d to %d papers, got %d",
			types.ErrInvalidInput, compare.MinPapers, compare.MaxPapers, len(paperIDs))
	}
	seen := make(map[string]struct{}, len(paperIDs))
	for _, id := range paperIDs {
		if _, dup := seen[id]; dup {
			return types.ComparisonResult{}, fmt.Errorf("%w: duplicate paper id %s", types.ErrInvalidInput, id)
		}
		seen[id] = struct{}{}
	}

	var survivors []string
	claimSets := make(map[string][]types.Claim)
	for _, result := range index.FetchAll(ctx, s.index, paperIDs, s.fetchers) {
		if result.Err != nil {
			fmt.Fprintf(s.warn, "warning: dropping paper %s from comparison: %v\n", result.ID, result.Err)
			continue
		}
		survivors = append(survivors, result.ID)
		claimSets[result.ID] = s.extractor.Extract(result.Paper)
	}

	if len(survivors) < compare.MinPapers {
		return types.ComparisonResult{}, fmt.Errorf("%w: fewer than %d papers could be fetched",
			types.ErrUpstreamUnavailable, compare.MinPapers)
	}

	return s.cmp.Compare(survivors, claimSets)
}

// GetCitations builds a one-hop citation graph around a paper.
func (s *Service) GetCitations(ctx context.Context, paperID, direction string, maxPerDirection int) (types.CitationGraph, error) {
	dir, err := ParseDirection(direction)
	if err != nil {
		return types.CitationGraph{}, err
	}
	return s.graphs.Build(ctx, paperID, dir, maxPerDirection)
}

// FindResearchGaps searches the index for a topic and synthesizes a gap
// report over the top results. A topic with no search results is an
// ErrPaperNotFound.
func (s *Service) FindResearchGaps(ctx context.Context, topic string, maxPapers int) (types.GapReport, error) {
	if strings.TrimSpace(topic) == "" {
		return types.GapReport{}, fmt.Errorf("%w: empty topic", types.ErrInvalidInput)
	}
	if maxPapers <= 0 {
		maxPapers = gaps.MaxPapers
	}
	if maxPapers > gaps.MaxPapers {
		return types.GapReport{}, fmt.Errorf("%w: gap synthesis covers at most %d papers, got %d",
			types.ErrInvalidInput, gaps.MaxPapers, maxPapers)
	}

	papers, err := s.index.Search(ctx, topic, maxPapers, 0)
	if err != nil {
		return types.GapReport{}, err
	}
	if len(papers) == 0 {
		return types.GapReport{}, fmt.Errorf("%w: no papers found for topic %q", types.ErrPaperNotFound, topic)
	}

	var ids []string
	claimSets := make(map[string][]types.Claim, len(papers))
	years := make(map[string]int, len(papers))
	for _, paper := range papers {
		ids = append(ids, paper.ID)
		claimSets[paper.ID] = s.extractor.Extract(paper)
		years[paper.ID] = paper.Year
	}

	return s.synth.Synthesize(ids, claimSets, years)
}
