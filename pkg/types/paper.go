// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the litreview pipeline:
// papers as returned by the index, claims extracted from abstracts, and the
// result objects produced by the comparison, citation, and gap stages.
package types

// Paper holds the index metadata for a single work. A Paper is immutable
// once fetched and lives only for the duration of one request; the pipeline
// never caches papers across requests.
type Paper struct {
	// ID is the bare work identifier (e.g. "W2741809807").
	ID string `json:"id" yaml:"id"`

	// Title is the paper title as returned by the index.
	Title string `json:"title" yaml:"title"`

	// Abstract is the reconstructed abstract text. Empty when the index
	// has no abstract for this work.
	Abstract string `json:"abstract,omitempty" yaml:"abstract,omitempty"`

	// Year is the publication year. Zero when unknown.
	Year int `json:"year,omitempty" yaml:"year,omitempty"`

	// Authors lists author display names in source order.
	Authors []string `json:"authors,omitempty" yaml:"authors,omitempty"`

	// DOI is the bare DOI without the resolver prefix, if any.
	DOI string `json:"doi,omitempty" yaml:"doi,omitempty"`

	// CitedByCount is the number of works citing this paper.
	CitedByCount int `json:"cited_by_count" yaml:"cited_by_count"`

	// ReferencedWorks lists the identifiers of works this paper references,
	// in source order.
	ReferencedWorks []string `json:"referenced_works,omitempty" yaml:"referenced_works,omitempty"`
}

// CitationDirection selects which side of the citation relation to traverse.
type CitationDirection string

const (
	// DirectionReferences follows the paper's own reference list (backward).
	DirectionReferences CitationDirection = "references"

	// DirectionCitedBy follows works citing the paper (forward).
	DirectionCitedBy CitationDirection = "cited_by"

	// DirectionBoth traverses both directions and unions the node sets.
	DirectionBoth CitationDirection = "both"
)
