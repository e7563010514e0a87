// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ClaimPair couples two claims from two different papers that address the
// same topic. A pair never combines claims from the same paper and never
// appears in both the agreement and contradiction lists.
type ClaimPair struct {
	// A and B are the paired claims. Ordering follows the caller-supplied
	// paper order, so output is deterministic for a given input.
	A Claim `json:"a" yaml:"a"`
	B Claim `json:"b" yaml:"b"`

	// OverlapScore is the lexical topic-overlap score that qualified the
	// pair for comparison.
	OverlapScore float64 `json:"overlap_score" yaml:"overlap_score"`
}

// ComparisonResult holds the outcome of comparing claims across papers.
type ComparisonResult struct {
	// Agreements are cross-paper claim pairs judged to concur.
	Agreements []ClaimPair `json:"agreements" yaml:"agreements"`

	// Contradictions are cross-paper claim pairs with opposite polarity.
	Contradictions []ClaimPair `json:"contradictions" yaml:"contradictions"`

	// OpenGaps are research-question claims with no topically overlapping
	// finding in any other compared paper.
	OpenGaps []Claim `json:"open_gaps" yaml:"open_gaps"`
}

// CitationNode is one paper in a citation neighborhood, carrying just
// enough metadata to label it.
type CitationNode struct {
	ID    string `json:"id" yaml:"id"`
	Title string `json:"title" yaml:"title"`
	Year  int    `json:"year,omitempty" yaml:"year,omitempty"`
}

// CitationEdge records one citation relation between two nodes.
type CitationEdge struct {
	FromID    string            `json:"from_id" yaml:"from_id"`
	ToID      string            `json:"to_id" yaml:"to_id"`
	Direction CitationDirection `json:"direction" yaml:"direction"`
}

// CitationGraph is the deduplicated node and edge set around a root paper.
// Nodes are unique by identifier even when a paper is reachable through
// both directions.
type CitationGraph struct {
	RootID string         `json:"root_id" yaml:"root_id"`
	Nodes  []CitationNode `json:"nodes" yaml:"nodes"`
	Edges  []CitationEdge `json:"edges" yaml:"edges"`
}

// TopicCluster groups conclusion claims that share a significant keyword.
type TopicCluster struct {
	// Keyword is the shared significant word that formed the cluster.
	Keyword string `json:"keyword" yaml:"keyword"`

	// PaperIDs lists the contributing papers, in input order.
	PaperIDs []string `json:"paper_ids" yaml:"paper_ids"`

	// Claims are the texts of the contributing conclusion claims.
	Claims []string `json:"claims" yaml:"claims"`

	// MeanYear is the mean publication year of contributing papers with a
	// known year. Zero when no contributing paper has one.
	MeanYear float64 `json:"mean_year" yaml:"mean_year"`
}

// GapReport aggregates research gaps across a set of papers.
type GapReport struct {
	// UnansweredQuestions are research-question claims with no topically
	// overlapping finding anywhere in the analyzed set.
	UnansweredQuestions []Claim `json:"unanswered_questions" yaml:"unanswered_questions"`

	// Limitations are methodology and conclusion claims containing
	// limitation-indicating language.
	Limitations []Claim `json:"limitations" yaml:"limitations"`

	// Contradictions unions the pairwise comparison contradictions across
	// every pair of papers in the set.
	Contradictions []ClaimPair `json:"contradictions" yaml:"contradictions"`

	// EmergingTopics are conclusion-claim keyword clusters, ordered most
	// recent first by mean publication year.
	EmergingTopics []TopicCluster `json:"emerging_topics" yaml:"emerging_topics"`
}
