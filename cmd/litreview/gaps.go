// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var gapsCmd = &cobra.Command{
	Use:   "gaps [topic...]",
	Short: "Synthesize a research-gap report for a topic",
	Long: `Gaps searches the index for a topic and analyzes the top results as a
set: research questions no paper answers, acknowledged limitations,
contradictions between papers, and emerging topic clusters.`,
	RunE: runGaps,
}

func init() {
	gapsCmd.Flags().Int("max-papers", 5, "number of top search results to analyze (1-10)")
	gapsCmd.Flags().Bool("json", false, "output the report as JSON")
	gapsCmd.Flags().String("out", "", "save the report to a YAML report file")

	rootCmd.AddCommand(gapsCmd)
}

func runGaps(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("provide a topic")
	}
	topic := strings.Join(args, " ")

	maxPapers, _ := cmd.Flags().GetInt("max-papers")

	svc, err := newService()
	if err != nil {
		return err
	}

	report, err := svc.FindResearchGaps(cmd.Context(), topic, maxPapers)
	if err != nil {
		return err
	}

	if out, _ := cmd.Flags().GetString("out"); out != "" {
		if err := writeReport(out, "gaps", args, report); err != nil {
			return err
		}
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return printJSON(report)
	}

	fmt.Printf("Unanswered questions (%d)\n", len(report.UnansweredQuestions))
	for i, claim := range report.UnansweredQuestions {
		fmt.Printf("%d. %s: %s\n", i+1, claim.PaperID, claim.Text)
	}

	fmt.Printf("\nLimitations (%d)\n", len(report.Limitations))
	for i, claim := range report.Limitations {
		fmt.Printf("%d. %s: %s\n", i+1, claim.PaperID, claim.Text)
	}

	fmt.Printf("\nContradictions (%d)\n", len(report.Contradictions))
	printClaimPairs(report.Contradictions)

	fmt.Printf("\nEmerging topics (%d)\n", len(report.EmergingTopics))
	for i, cluster := range report.EmergingTopics {
		fmt.Printf("%d. %q across %d papers", i+1, cluster.Keyword, len(cluster.PaperIDs))
		if cluster.MeanYear > 0 {
			fmt.Printf(" (mean year %.1f)", cluster.MeanYear)
		}
		fmt.Println()
	}
	return nil
}
