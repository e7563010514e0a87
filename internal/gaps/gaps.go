// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package gaps synthesizes a research-gap report from the claims of a
// paper set: unanswered questions, acknowledged limitations, cross-paper
// contradictions, and emerging topic clusters.
package gaps

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pdiddy/litreview/internal/compare"
	"github.com/pdiddy/litreview/pkg/types"
)

// MinPapers and MaxPapers bound the size of a synthesis set.
const (
	MinPapers = 1
	MaxPapers = 10
)

// DefaultMinClusterPapers is the number of distinct papers a keyword
// must appear in before it forms a topic cluster.
const DefaultMinClusterPapers = 2

// defaultLimitationCues mark a sentence as acknowledging a limitation.
var defaultLimitationCues = []string{
	"limited to", "does not address", "future work", "small sample",
	"beyond the scope", "remains to be",
}

// Synthesizer derives gap reports from claim sets.
type Synthesizer struct {
	cmp              *compare.Comparator
	limitationCues   []string
	minClusterPapers int
}

// NewSynthesizer builds a synthesizer from analysis config. Empty cue
// lists and a zero cluster minimum fall back to defaults.
func NewSynthesizer(cfg types.AnalysisConfig) *Synthesizer {
	cues := cfg.LimitationCues
	if len(cues) == 0 {
		cues = defaultLimitationCues
	}
	minPapers := cfg.MinClusterPapers
	if minPapers <= 0 {
		minPapers = DefaultMinClusterPapers
	}
	return &Synthesizer{
		cmp:              compare.New(cfg),
		limitationCues:   cues,
		minClusterPapers: minPapers,
	}
}

// Synthesize builds a gap report over the given papers. Every paper id
// must have an entry in claimSets; years maps paper ids to publication
// years and may be incomplete.
func (s *Synthesizer) Synthesize(paperIDs []string, claimSets map[string][]types.Claim, years map[string]int) (types.GapReport, error) {
	if len(paperIDs) < MinPapers || len(paperIDs) > MaxPapers {
		return types.GapReport{}, fmt.Errorf("%w: synthesis needs %d to %d papers, got %d",
			types.ErrInvalidInput, MinPapers, MaxPapers, len(paperIDs))
	}
	for _, id := range paperIDs {
		if _, ok := claimSets[id]; !ok {
			return types.GapReport{}, fmt.Errorf("%w: no claims for paper %s", types.ErrInvalidInput, id)
		}
	}

	var all []types.Claim
	for _, id := range paperIDs {
		all = append(all, claimSets[id]...)
	}

	report := types.GapReport{
		UnansweredQuestions: s.unansweredQuestions(all),
		Limitations:         s.limitations(all),
		Contradictions:      s.contradictions(all),
		EmergingTopics:      s.emergingTopics(all, years),
	}
	return report, nil
}

// unansweredQuestions returns research questions no finding in the set
// overlaps, the question's own paper included.
func (s *Synthesizer) unansweredQuestions(all []types.Claim) []types.Claim {
	questions := []types.Claim{}
	for _, q := range all {
		if q.Kind != types.ClaimResearchQuestion {
			continue
		}
		answered := false
		for _, f := range all {
			if f.Kind != types.ClaimFinding {
				continue
			}
			if s.cmp.OverlapScore(q.Text, f.Text) > s.cmp.Threshold() {
				answered = true
				break
			}
		}
		if !answered {
			questions = append(questions, q)
		}
	}
	return questions
}

// limitations returns methodology and conclusion claims whose text
// contains a limitation cue.
func (s *Synthesizer) limitations(all []types.Claim) []types.Claim {
	limitations := []types.Claim{}
	for _, claim := range all {
		if claim.Kind != types.ClaimMethodology && claim.Kind != types.ClaimConclusion {
			continue
		}
		lower := strings.ToLower(claim.Text)
		for _, cue := range s.limitationCues {
			if strings.Contains(lower, cue) {
				limitations = append(limitations, claim)
				break
			}
		}
	}
	return limitations
}

// contradictions pairs overlapping finding and conclusion claims from
// different papers whose polarities oppose each other.
func (s *Synthesizer) contradictions(all []types.Claim) []types.ClaimPair {
	var statements []types.Claim
	for _, claim := range all {
		if claim.Kind == types.ClaimFinding || claim.Kind == types.ClaimConclusion {
			statements = append(statements, claim)
		}
	}

	pairs := []types.ClaimPair{}
	for i := 0; i < len(statements); i++ {
		for j := i + 1; j < len(statements); j++ {
			a, b := statements[i], statements[j]
			if a.PaperID == b.PaperID {
				continue
			}
			if a.Polarity == types.PolarityNone || b.Polarity == types.PolarityNone ||
				!a.Polarity.OpposedTo(b.Polarity) {
				continue
			}
			score := s.cmp.OverlapScore(a.Text, b.Text)
			if score > s.cmp.Threshold() {
				pairs = append(pairs, types.ClaimPair{A: a, B: b, OverlapScore: score})
			}
		}
	}
	return pairs
}

// emergingTopics clusters conclusion claims by significant keyword.
// A keyword forms a topic once it appears in conclusions of at least
// minClusterPapers distinct papers. Topics are ordered newest first,
// then by cluster size, then by keyword.
func (s *Synthesizer) emergingTopics(all []types.Claim, years map[string]int) []types.TopicCluster {
	type cluster struct {
		paperIDs []string
		seen     map[string]struct{}
		claims   []string
	}
	byKeyword := make(map[string]*cluster)

	for _, claim := range all {
		if claim.Kind != types.ClaimConclusion {
			continue
		}
		for word := range s.cmp.SignificantWords(claim.Text) {
			cl := byKeyword[word]
			if cl == nil {
				cl = &cluster{seen: make(map[string]struct{})}
				byKeyword[word] = cl
			}
			if _, ok := cl.seen[claim.PaperID]; !ok {
				cl.seen[claim.PaperID] = struct{}{}
				cl.paperIDs = append(cl.paperIDs, claim.PaperID)
			}
			cl.claims = append(cl.claims, claim.Text)
		}
	}

	topics := []types.TopicCluster{}
	for keyword, cl := range byKeyword {
		if len(cl.paperIDs) < s.minClusterPapers {
			continue
		}
		topics = append(topics, types.TopicCluster{
			Keyword:  keyword,
			PaperIDs: cl.paperIDs,
			Claims:   cl.claims,
			MeanYear: meanYear(cl.paperIDs, years),
		})
	}

	sort.Slice(topics, func(i, j int) bool {
		if topics[i].MeanYear != topics[j].MeanYear {
			return topics[i].MeanYear > topics[j].MeanYear
		}
		if len(topics[i].PaperIDs) != len(topics[j].PaperIDs) {
			return len(topics[i].PaperIDs) > len(topics[j].PaperIDs)
		}
		return topics[i].Keyword < topics[j].Keyword
	})
	return topics
}

// meanYear averages the known publication years of the papers. Papers
// missing from the map contribute nothing; all unknown yields 0.
func meanYear(paperIDs []string, years map[string]int) float64 {
	sum, n := 0, 0
	for _, id := range paperIDs {
		if year, ok := years[id]; ok && year > 0 {
			sum += year
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return float64(sum) / float64(n)
}
