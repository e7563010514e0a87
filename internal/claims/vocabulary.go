// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package claims

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Vocabulary holds the lexical cue sets driving claim classification and
// polarity tagging. All matching is case-insensitive substring matching
// against the sentence.
type Vocabulary struct {
	ResearchQuestion []string `yaml:"research_question"`
	Methodology      []string `yaml:"methodology"`
	Finding          []string `yaml:"finding"`
	Conclusion       []string `yaml:"conclusion"`

	Increase []string `yaml:"increase"`
	Decrease []string `yaml:"decrease"`
	Positive []string `yaml:"positive"`
	Negative []string `yaml:"negative"`
	NoEffect []string `yaml:"no_effect"`
	Effect   []string `yaml:"effect"`
}

// DefaultVocabulary returns the built-in cue sets.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		ResearchQuestion: []string{
			"we ask", "an open question", "remains unclear", "it is unclear",
			"remains unknown", "little is known", "we investigate whether",
		},
		Methodology: []string{
			"we use", "we used", "we employ", "we conduct", "we apply",
			"method", "approach", "dataset", "experiment",
		},
		Finding: []string{
			"we find", "we found", "results show", "demonstrates",
			"demonstrate that", "indicates", "indicate that", "we observe",
			"shows that",
		},
		Conclusion: []string{
			"in conclusion", "we conclude", "therefore", "overall",
			"in summary", "taken together", "these findings suggest",
		},

		Increase: []string{"increase", "higher", "improve", "faster", "gain"},
		Decrease: []string{"decrease", "reduce", "reduction", "lower", "slower", "drop"},
		Positive: []string{"positive", "beneficial", "effective"},
		Negative: []string{"negative", "harmful", "detrimental", "ineffective"},
		NoEffect: []string{"no effect", "no significant", "no difference", "did not affect", "not significant"},
		Effect:   []string{"significant effect", "significant difference", "significantly"},
	}
}

// LoadVocabulary reads cue sets from a YAML file. Fields left empty in the
// file keep their defaults, so a file can override a single cue set.
func LoadVocabulary(path string) (Vocabulary, error) {
	vocab := DefaultVocabulary()

	data, err := os.ReadFile(path)
	if err != nil {
		return vocab, fmt.Errorf("reading vocabulary file %s: %w", path, err)
	}

	var override Vocabulary
	if err := yaml.Unmarshal(data, &override); err != nil {
		return vocab, fmt.Errorf("parsing vocabulary file %s: %w", path, err)
	}

	merge := func(dst *[]string, src []string) {
		if len(src) > 0 {
			*dst = src
		}
	}
	merge(&vocab.ResearchQuestion, override.ResearchQuestion)
	merge(&vocab.Methodology, override.Methodology)
	merge(&vocab.Finding, override.Finding)
	merge(&vocab.Conclusion, override.Conclusion)
	merge(&vocab.Increase, override.Increase)
	merge(&vocab.Decrease, override.Decrease)
	merge(&vocab.Positive, override.Positive)
	merge(&vocab.Negative, override.Negative)
	merge(&vocab.NoEffect, override.NoEffect)
	merge(&vocab.Effect, override.Effect)

	return vocab, nil
}
