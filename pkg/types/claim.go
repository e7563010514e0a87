// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ClaimKind categorizes one sentence of an abstract by its semantic role.
type ClaimKind string

const (
	ClaimResearchQuestion ClaimKind = "research_question"
	ClaimMethodology      ClaimKind = "methodology"
	ClaimFinding          ClaimKind = "finding"
	ClaimConclusion       ClaimKind = "conclusion"
	ClaimUnclassified     ClaimKind = "unclassified"
)

// Polarity is a directional tag attached to finding and conclusion claims
// by a keyword scan. It exists only to detect contradictions between
// claims that address the same topic.
type Polarity string

const (
	PolarityNone     Polarity = ""
	PolarityIncrease Polarity = "increase"
	PolarityDecrease Polarity = "decrease"
	PolarityPositive Polarity = "positive"
	PolarityNegative Polarity = "negative"
	PolarityEffect   Polarity = "effect"
	PolarityNoEffect Polarity = "no_effect"
)

// OpposedTo reports whether two polarity hints are directional opposites.
// Unset polarities oppose nothing.
func (p Polarity) OpposedTo(q Polarity) bool {
	switch {
	case p == PolarityIncrease && q == PolarityDecrease,
		p == PolarityDecrease && q == PolarityIncrease,
		p == PolarityPositive && q == PolarityNegative,
		p == PolarityNegative && q == PolarityPositive,
		p == PolarityEffect && q == PolarityNoEffect,
		p == PolarityNoEffect && q == PolarityEffect:
		return true
	}
	return false
}

// Claim is one sentence from a paper's abstract with its classified role.
// Claims reference their paper by identifier only and preserve the source
// sentence unmodified.
type Claim struct {
	// PaperID identifies the paper this claim was extracted from.
	PaperID string `json:"paper_id" yaml:"paper_id"`

	// Kind is the semantic role assigned by the classifier.
	Kind ClaimKind `json:"kind" yaml:"kind"`

	// Text is the source sentence, unmodified apart from surrounding
	// whitespace trimming during segmentation.
	Text string `json:"text" yaml:"text"`

	// Polarity is the optional directional hint. Set only on finding and
	// conclusion claims whose text contains directional language.
	Polarity Polarity `json:"polarity,omitempty" yaml:"polarity,omitempty"`
}
