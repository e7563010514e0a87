// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package compare scores lexical overlap between claims and derives
// agreements, contradictions, and open gaps across a set of papers.
package compare

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/pdiddy/litreview/pkg/types"
)

// MinPapers and MaxPapers bound the size of a comparison set.
const (
	MinPapers = 2
	MaxPapers = 5
)

// DefaultOverlapThreshold is the score two claims must exceed to count
// as related.
const DefaultOverlapThreshold = 0.3

// defaultStopWords are excluded from overlap scoring. The list covers
// function words common in abstracts; domain terms always survive.
var defaultStopWords = []string{
	"a", "an", "the", "and", "or", "but", "if", "then", "than", "that",
	"this", "these", "those", "is", "are", "was", "were", "be", "been",
	"being", "to", "of", "in", "on", "at", "by", "for", "with", "from",
	"as", "it", "its", "we", "our", "us", "they", "their", "not", "no",
	"do", "does", "did", "can", "could", "may", "might", "will", "would",
	"should", "have", "has", "had", "which", "what", "when", "where",
	"who", "how", "why", "also", "such", "more", "most", "both", "between",
	"into", "through", "over", "under", "while", "about",
}

// Comparator scores claim overlap against a configured threshold.
type Comparator struct {
	threshold float64
	stop      map[string]struct{}
}

// New builds a comparator from analysis config. A zero threshold falls
// back to the default; an empty stop-word list uses the built-in set.
func New(cfg types.AnalysisConfig) *Comparator {
	threshold := cfg.OverlapThreshold
	if threshold == 0 {
		threshold = DefaultOverlapThreshold
	}

	words := cfg.StopWords
	if len(words) == 0 {
		words = defaultStopWords
	}
	stop := make(map[string]struct{}, len(words))
	for _, w := range words {
		stop[strings.ToLower(w)] = struct{}{}
	}

	return &Comparator{threshold: threshold, stop: stop}
}

// Compare relates the claim sets of the given papers. Every paper id
// must have an entry in claimSets. The set size must be between
// MinPapers and MaxPapers inclusive.
//
// Two finding or conclusion claims from different papers are related
// when their overlap score exceeds the threshold; related pairs with
// opposed polarities are contradictions, all other related pairs are
// agreements. A research question is an open gap when no finding from
// another paper in the set overlaps it.
func (c *Comparator) Compare(paperIDs []string, claimSets map[string][]types.Claim) (types.ComparisonResult, error) {
	if len(paperIDs) < MinPapers || len(paperIDs) > MaxPapers {
		return types.ComparisonResult{}, fmt.Errorf("%w: comparison needs %d to %d papers, got %d",
			types.ErrInvalidInput, MinPapers, MaxPapers, len(paperIDs))
	}
	for _, id := range paperIDs {
		if _, ok := claimSets[id]; !ok {
			return types.ComparisonResult{}, fmt.Errorf("%w: no claims for paper %s", types.ErrInvalidInput, id)
		}
	}

	var statements []types.Claim
	for _, id := range paperIDs {
		for _, claim := range claimSets[id] {
			if claim.Kind == types.ClaimFinding || claim.Kind == types.ClaimConclusion {
				statements = append(statements, claim)
			}
		}
	}

	result := types.ComparisonResult{
		Agreements:     []types.ClaimPair{},
		Contradictions: []types.ClaimPair{},
		OpenGaps:       []types.Claim{},
	}

	for i := 0; i < len(statements); i++ {
		for j := i + 1; j < len(statements); j++ {
			a, b := statements[i], statements[j]
			if a.PaperID == b.PaperID {
				continue
			}
			score := c.OverlapScore(a.Text, b.Text)
			if score <= c.threshold {
				continue
			}
			pair := types.ClaimPair{A: a, B: b, OverlapScore: score}
			if a.Polarity != types.PolarityNone && b.Polarity != types.PolarityNone &&
				a.Polarity.OpposedTo(b.Polarity) {
				result.Contradictions = append(result.Contradictions, pair)
			} else {
				result.Agreements = append(result.Agreements, pair)
			}
		}
	}

	for _, id := range paperIDs {
		for _, claim := range claimSets[id] {
			if claim.Kind != types.ClaimResearchQuestion {
				continue
			}
			if !c.answeredByOther(claim, statements) {
				result.OpenGaps = append(result.OpenGaps, claim)
			}
		}
	}

	return result, nil
}

// answeredByOther reports whether any finding from a different paper
// overlaps the question above the threshold.
func (c *Comparator) answeredByOther(question types.Claim, statements []types.Claim) bool {
	for _, s := range statements {
		if s.Kind != types.ClaimFinding || s.PaperID == question.PaperID {
			continue
		}
		if c.OverlapScore(question.Text, s.Text) > c.threshold {
			return true
		}
	}
	return false
}

// Threshold returns the overlap score two claims must exceed to count
// as related.
func (c *Comparator) Threshold() float64 {
	return c.threshold
}

// OverlapScore is the number of significant words shared by both texts
// divided by the size of the smaller significant-word set. It is 0 when
// either set is empty and 1 when one set contains the other.
func (c *Comparator) OverlapScore(a, b string) float64 {
	wa := c.SignificantWords(a)
	wb := c.SignificantWords(b)
	if len(wa) == 0 || len(wb) == 0 {
		return 0
	}

	shared := 0
	for w := range wa {
		if _, ok := wb[w]; ok {
			shared++
		}
	}

	smaller := len(wa)
	if len(wb) < smaller {
		smaller = len(wb)
	}
	return float64(shared) / float64(smaller)
}

// SignificantWords lowercases the text, strips everything but letters
// and digits, and drops stop words. The result is a set of unique words.
func (c *Comparator) SignificantWords(text string) map[string]struct{} {
	words := make(map[string]struct{})
	for _, field := range strings.Fields(strings.ToLower(text)) {
		cleaned := strings.Map(func(r rune) rune {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				return r
			}
			return -1
		}, field)
		if cleaned == "" {
			continue
		}
		if _, stop := c.stop[cleaned]; stop {
			continue
		}
		words[cleaned] = struct{}{}
	}
	return words
}
