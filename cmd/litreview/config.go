// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/viper"

	"github.com/pdiddy/litreview/internal/claims"
	"github.com/pdiddy/litreview/internal/index"
	"github.com/pdiddy/litreview/internal/pipeline"
	"github.com/pdiddy/litreview/internal/secrets"
	"github.com/pdiddy/litreview/pkg/types"
)

func setConfigDefaults() {
	viper.SetDefault("index.base_url", "https://api.openalex.org")
	viper.SetDefault("index.timeout", "30s")
	viper.SetDefault("index.user_agent", "litreview/0.1")
	viper.SetDefault("index.max_retries", 3)
	viper.SetDefault("index.max_concurrent_fetches", 4)
	viper.SetDefault("analysis.overlap_threshold", 0.3)
	viper.SetDefault("analysis.min_cluster_papers", 2)
}

// pipelineConfig assembles the runtime configuration from viper. The
// polite-pool email falls back to the openalex-email secret when not
// configured.
func pipelineConfig() types.PipelineConfig {
	cfg := types.PipelineConfig{
		Index: types.IndexConfig{
			BaseURL:              viper.GetString("index.base_url"),
			Timeout:              viper.GetDuration("index.timeout"),
			UserAgent:            viper.GetString("index.user_agent"),
			Mailto:               viper.GetString("index.mailto"),
			MaxRetries:           viper.GetInt("index.max_retries"),
			MaxConcurrentFetches: viper.GetInt("index.max_concurrent_fetches"),
		},
		Analysis: types.AnalysisConfig{
			OverlapThreshold: viper.GetFloat64("analysis.overlap_threshold"),
			MinClusterPapers: viper.GetInt("analysis.min_cluster_papers"),
			StopWords:        viper.GetStringSlice("analysis.stop_words"),
			LimitationCues:   viper.GetStringSlice("analysis.limitation_cues"),
			VocabularyFile:   viper.GetString("analysis.vocabulary_file"),
		},
	}
	if cfg.Index.Mailto == "" {
		cfg.Index.Mailto = loadedSecrets[secrets.OpenAlexEmail]
	}
	return cfg
}

// newService wires the pipeline service from configuration.
func newService() (*pipeline.Service, error) {
	cfg := pipelineConfig()

	vocab := claims.DefaultVocabulary()
	if path := cfg.Analysis.VocabularyFile; path != "" {
		loaded, err := claims.LoadVocabulary(path)
		if err != nil {
			return nil, err
		}
		vocab = loaded
	}

	client := index.NewOpenAlex(cfg.Index)
	return pipeline.New(client, vocab, cfg.Analysis, cfg.Index.MaxConcurrentFetches, os.Stderr), nil
}
