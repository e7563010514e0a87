// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/litreview/pkg/types"
)

func TestSignificantWords(t *testing.T) {
	c := New(types.AnalysisConfig{})

	words := c.SignificantWords("The cache REDUCES p99-latency, by 40%!")
	assert.Equal(t, map[string]struct{}{
		"cache":      {},
		"reduces":    {},
		"p99latency": {},
		"40":         {},
	}, words)
}

func TestOverlapScore(t *testing.T) {
	c := New(types.AnalysisConfig{})

	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"identical", "caching reduces latency", "caching reduces latency", 1.0},
		{"disjoint", "caching reduces latency", "genome sequencing pipeline", 0.0},
		{"subset", "caching reduces latency", "caching reduces latency in web servers", 1.0},
		{"empty side", "", "caching reduces latency", 0.0},
		{"stop words only", "the of and", "caching reduces latency", 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, c.OverlapScore(tt.a, tt.b), 1e-9)
		})
	}
}

func TestCompare_Validation(t *testing.T) {
	c := New(types.AnalysisConfig{})
	sets := map[string][]types.Claim{"W1": {}, "W2": {}}

	_, err := c.Compare([]string{"W1"}, sets)
	assert.ErrorIs(t, err, types.ErrInvalidInput)

	_, err = c.Compare([]string{"W1", "W2", "W3", "W4", "W5", "W6"}, sets)
	assert.ErrorIs(t, err, types.ErrInvalidInput)

	_, err = c.Compare([]string{"W1", "W9"}, sets)
	assert.ErrorIs(t, err, types.ErrInvalidInput)
}

func finding(paperID, text string, polarity types.Polarity) types.Claim {
	return types.Claim{PaperID: paperID, Kind: types.ClaimFinding, Text: text, Polarity: polarity}
}

func TestCompare_AgreementsAndContradictions(t *testing.T) {
	c := New(types.AnalysisConfig{})

	sets := map[string][]types.Claim{
		"W1": {
			finding("W1", "Caching reduces latency significantly in web servers", types.PolarityDecrease),
		},
		"W2": {
			finding("W2", "Caching increases latency overhead in edge servers", types.PolarityIncrease),
		},
		"W3": {
			finding("W3", "Caching reduces latency for read-heavy servers", types.PolarityDecrease),
		},
	}

	result, err := c.Compare([]string{"W1", "W2", "W3"}, sets)
	require.NoError(t, err)

	// W1 vs W3 agree, W2 contradicts both.
	require.Len(t, result.Agreements, 1)
	assert.Equal(t, "W1", result.Agreements[0].A.PaperID)
	assert.Equal(t, "W3", result.Agreements[0].B.PaperID)
	assert.Greater(t, result.Agreements[0].OverlapScore, 0.3)

	require.Len(t, result.Contradictions, 2)
	for _, pair := range result.Contradictions {
		assert.True(t, pair.A.Polarity.OpposedTo(pair.B.Polarity))
	}
}

func TestCompare_OppositePolarityNeverAgrees(t *testing.T) {
	c := New(types.AnalysisConfig{})

	sets := map[string][]types.Claim{
		"W1": {finding("W1", "latency decreased 40%", types.PolarityDecrease)},
		"W2": {finding("W2", "latency increased 10%", types.PolarityIncrease)},
	}

	result, err := c.Compare([]string{"W1", "W2"}, sets)
	require.NoError(t, err)
	require.Len(t, result.Contradictions, 1)
	assert.Empty(t, result.Agreements)
}

func TestCompare_SamePaperClaimsNeverPair(t *testing.T) {
	c := New(types.AnalysisConfig{})

	sets := map[string][]types.Claim{
		"W1": {
			finding("W1", "Caching reduces latency in servers", types.PolarityDecrease),
			finding("W1", "Caching increases latency in servers", types.PolarityIncrease),
		},
		"W2": {
			finding("W2", "Genome sequencing pipelines scale linearly", types.PolarityNone),
		},
	}

	result, err := c.Compare([]string{"W1", "W2"}, sets)
	require.NoError(t, err)
	assert.Empty(t, result.Agreements)
	assert.Empty(t, result.Contradictions)
}

func TestCompare_UnsetPolarityIsAgreement(t *testing.T) {
	c := New(types.AnalysisConfig{})

	sets := map[string][]types.Claim{
		"W1": {finding("W1", "Caching reduces latency in servers", types.PolarityDecrease)},
		"W2": {finding("W2", "Caching and latency matter for servers", types.PolarityNone)},
	}

	result, err := c.Compare([]string{"W1", "W2"}, sets)
	require.NoError(t, err)
	require.Len(t, result.Agreements, 1)
	assert.Empty(t, result.Contradictions)
}

func TestCompare_OpenGaps(t *testing.T) {
	c := New(types.AnalysisConfig{})

	answered := types.Claim{
		PaperID: "W1", Kind: types.ClaimResearchQuestion,
		Text: "Does caching reduce latency?",
	}
	unanswered := types.Claim{
		PaperID: "W1", Kind: types.ClaimResearchQuestion,
		Text: "Does memory compression help databases?",
	}

	sets := map[string][]types.Claim{
		"W1": {answered, unanswered},
		"W2": {finding("W2", "We find caching lowers latency", types.PolarityDecrease)},
	}

	result, err := c.Compare([]string{"W1", "W2"}, sets)
	require.NoError(t, err)
	require.Len(t, result.OpenGaps, 1)
	assert.Equal(t, unanswered.Text, result.OpenGaps[0].Text)
}

func TestCompare_OwnFindingDoesNotCloseGap(t *testing.T) {
	c := New(types.AnalysisConfig{})

	sets := map[string][]types.Claim{
		"W1": {
			{PaperID: "W1", Kind: types.ClaimResearchQuestion, Text: "Does caching reduce latency?"},
			finding("W1", "We find caching lowers latency", types.PolarityDecrease),
		},
		"W2": {finding("W2", "Genome sequencing pipelines scale linearly", types.PolarityNone)},
	}

	result, err := c.Compare([]string{"W1", "W2"}, sets)
	require.NoError(t, err)
	// The only matching finding is the question's own paper.
	require.Len(t, result.OpenGaps, 1)
}

func TestCompare_EmptyClaimSets(t *testing.T) {
	c := New(types.AnalysisConfig{})

	result, err := c.Compare([]string{"W1", "W2"}, map[string][]types.Claim{"W1": nil, "W2": nil})
	require.NoError(t, err)
	assert.Empty(t, result.Agreements)
	assert.Empty(t, result.Contradictions)
	assert.Empty(t, result.OpenGaps)
}
