// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare [paper-ids...]",
	Short: "Compare the claims of 2 to 5 papers",
	Long: `Compare fetches the given papers, extracts their claims, and relates
them: agreements (overlapping findings), contradictions (overlapping
findings with opposed polarity), and open gaps (research questions no
other paper in the set answers). Papers that cannot be fetched are
dropped with a warning as long as at least two remain.`,
	Args: cobra.RangeArgs(2, 5),
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().Bool("json", false, "output the comparison as JSON")
	compareCmd.Flags().String("out", "", "save the comparison to a YAML report file")

	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}

	result, err := svc.ComparePapers(cmd.Context(), args)
	if err != nil {
		return err
	}

	if out, _ := cmd.Flags().GetString("out"); out != "" {
		if err := writeReport(out, "compare", args, result); err != nil {
			return err
		}
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return printJSON(result)
	}

	fmt.Printf("Agreements (%d)\n", len(result.Agreements))
	printClaimPairs(result.Agreements)

	fmt.Printf("\nContradictions (%d)\n", len(result.Contradictions))
	printClaimPairs(result.Contradictions)

	fmt.Printf("\nOpen gaps (%d)\n", len(result.OpenGaps))
	for i, claim := range result.OpenGaps {
		fmt.Printf("%d. %s: %s\n", i+1, claim.PaperID, claim.Text)
	}
	return nil
}
