// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"
)

// reportFile is the on-disk representation of an operation result. A
// researcher can save any command's output to a YAML file with --out
// and revisit it later without re-querying the index.
type reportFile struct {
	Operation string    `yaml:"operation"`
	Arguments []string  `yaml:"arguments,omitempty"`
	Timestamp time.Time `yaml:"timestamp"`
	Result    any       `yaml:"result"`
}

// writeReport saves an operation result to a YAML file.
func writeReport(path, operation string, arguments []string, result any) error {
	rf := reportFile{
		Operation: operation,
		Arguments: arguments,
		Timestamp: time.Now(),
		Result:    result,
	}
	data, err := yaml.Marshal(&rf)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Saved report to %s\n", path)
	return nil
}
