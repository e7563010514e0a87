// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package claims turns a paper's abstract into an ordered sequence of
// typed claims. Classification is a fixed-priority decision table over
// lexical cues; it is deterministic and makes no network calls.
package claims

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pdiddy/litreview/pkg/types"
)

// numericFindingRe matches numeric and percentage patterns that mark a
// sentence as reporting a result (e.g. "40%", "12 percent", "p < 0.05").
var numericFindingRe = regexp.MustCompile(`\d+(\.\d+)?\s*(%|percent)|p\s*[<=]\s*0?\.\d+`)

// Extractor classifies abstract sentences using a cue vocabulary.
type Extractor struct {
	vocab Vocabulary
	rules []rule
}

// rule is one row of the classification decision table. Rules are
// evaluated top to bottom; the first match wins.
type rule struct {
	kind  types.ClaimKind
	match func(sentence, lower string, last bool) bool
}

// NewExtractor builds an extractor around the given vocabulary.
func NewExtractor(vocab Vocabulary) *Extractor {
	e := &Extractor{vocab: vocab}
	e.rules = []rule{
		{types.ClaimResearchQuestion, func(sentence, lower string, _ bool) bool {
			return strings.HasSuffix(sentence, "?") || containsAny(lower, vocab.ResearchQuestion)
		}},
		{types.ClaimMethodology, func(_, lower string, _ bool) bool {
			return containsAny(lower, vocab.Methodology)
		}},
		{types.ClaimFinding, func(_, lower string, _ bool) bool {
			return containsAny(lower, vocab.Finding) || numericFindingRe.MatchString(lower)
		}},
		{types.ClaimConclusion, func(_, lower string, last bool) bool {
			return containsAny(lower, vocab.Conclusion) || last
		}},
	}
	return e
}

// Extract produces one claim per sentence of the paper's abstract, in
// sentence order. An empty or absent abstract yields an empty sequence,
// not an error. No sentence is ever dropped: sentences matching no rule
// come back as unclassified claims.
func (e *Extractor) Extract(paper types.Paper) []types.Claim {
	sentences := SplitSentences(paper.Abstract)
	if len(sentences) == 0 {
		return nil
	}

	claims := make([]types.Claim, 0, len(sentences))
	for i, sentence := range sentences {
		kind := e.classify(sentence, i == len(sentences)-1)

		claim := types.Claim{
			PaperID: paper.ID,
			Kind:    kind,
			Text:    sentence,
		}
		if kind == types.ClaimFinding || kind == types.ClaimConclusion {
			claim.Polarity = e.polarity(strings.ToLower(sentence))
		}
		claims = append(claims, claim)
	}
	return claims
}

// classify runs the decision table for one sentence.
func (e *Extractor) classify(sentence string, last bool) types.ClaimKind {
	lower := strings.ToLower(sentence)
	for _, r := range e.rules {
		if r.match(sentence, lower, last) {
			return r.kind
		}
	}
	return types.ClaimUnclassified
}

// polarity scans for directional language. Negated cue sets are checked
// before their affirmative counterparts so "no significant difference"
// does not read as an effect.
func (e *Extractor) polarity(lower string) types.Polarity {
	switch {
	case containsAny(lower, e.vocab.NoEffect):
		return types.PolarityNoEffect
	case containsAny(lower, e.vocab.Increase):
		return types.PolarityIncrease
	case containsAny(lower, e.vocab.Decrease):
		return types.PolarityDecrease
	case containsAny(lower, e.vocab.Positive):
		return types.PolarityPositive
	case containsAny(lower, e.vocab.Negative):
		return types.PolarityNegative
	case containsAny(lower, e.vocab.Effect):
		return types.PolarityEffect
	}
	return types.PolarityNone
}

// containsAny reports whether s contains any of the cues.
func containsAny(s string, cues []string) bool {
	for _, cue := range cues {
		if strings.Contains(s, cue) {
			return true
		}
	}
	return false
}

// SplitSentences segments text at sentence-boundary punctuation: '.', '?',
// or '!' followed by whitespace or end of text. Fragments are trimmed and
// empty ones discarded. A trailing fragment without terminal punctuation
// still counts as a sentence, so no text is lost.
func SplitSentences(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var sentences []string
	start := 0
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if r == '.' || r == '?' || r == '!' {
			end := i + size
			next, _ := utf8.DecodeRuneInString(text[end:])
			if end >= len(text) || unicode.IsSpace(next) {
				if s := strings.TrimSpace(text[start:end]); s != "" {
					sentences = append(sentences, s)
				}
				start = end
			}
		}
		i += size
	}
	if start < len(text) {
		if s := strings.TrimSpace(text[start:]); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}
