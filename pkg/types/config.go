package types

import "time"

// IndexConfig holds settings for the paper index client.
type IndexConfig struct {
	// BaseURL is the index API root (default "https://api.openalex.org").
	BaseURL string `json:"base_url" yaml:"base_url"`

	// Timeout is the per-request HTTP timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "litreview/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`

	// Mailto is the contact email sent as the mailto parameter for
	// polite-pool access. Optional.
	Mailto string `json:"mailto,omitempty" yaml:"mailto,omitempty"`

	// MaxRetries is the retry cap for transient HTTP failures (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`

	// MaxConcurrentFetches bounds in-flight fetches during multi-paper
	// operations (default 4).
	MaxConcurrentFetches int `json:"max_concurrent_fetches" yaml:"max_concurrent_fetches"`
}

// AnalysisConfig holds the tuning parameters of the analysis stages. The
// defaults are deliberate guesses documented in the stage tests; all of
// them are overridable through configuration.
type AnalysisConfig struct {
	// OverlapThreshold is the minimum lexical topic-overlap score for two
	// claims to be considered the same topic (default 0.3). A pair
	// qualifies when its score strictly exceeds the threshold.
	OverlapThreshold float64 `json:"overlap_threshold" yaml:"overlap_threshold"`

	// MinClusterPapers is the minimum number of contributing papers for an
	// emerging-topic cluster to be reported (default 2).
	MinClusterPapers int `json:"min_cluster_papers" yaml:"min_cluster_papers"`

	// StopWords are excluded from significant-word sets before overlap
	// scoring. Empty means use the built-in list.
	StopWords []string `json:"stop_words,omitempty" yaml:"stop_words,omitempty"`

	// LimitationCues are the substrings that mark a methodology or
	// conclusion claim as a limitation. Empty means use the built-in list.
	LimitationCues []string `json:"limitation_cues,omitempty" yaml:"limitation_cues,omitempty"`

	// VocabularyFile optionally points to a YAML file overriding the
	// claim-classification cue sets.
	VocabularyFile string `json:"vocabulary_file,omitempty" yaml:"vocabulary_file,omitempty"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Index    IndexConfig    `json:"index" yaml:"index"`
	Analysis AnalysisConfig `json:"analysis" yaml:"analysis"`
}
