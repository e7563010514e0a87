// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var claimsCmd = &cobra.Command{
	Use:   "claims [paper-id]",
	Short: "Extract classified claims from a paper's abstract",
	Long: `Claims fetches a paper and segments its abstract into sentences, each
classified as a research question, methodology, finding, conclusion, or
left unclassified. Findings and conclusions carry a polarity tag when the
sentence states a direction of effect.`,
	Args: cobra.ExactArgs(1),
	RunE: runClaims,
}

func init() {
	claimsCmd.Flags().Bool("json", false, "output claims as JSON")
	claimsCmd.Flags().String("out", "", "save claims to a YAML report file")

	rootCmd.AddCommand(claimsCmd)
}

func runClaims(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}

	extracted, err := svc.ExtractClaims(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if out, _ := cmd.Flags().GetString("out"); out != "" {
		if err := writeReport(out, "claims", args, extracted); err != nil {
			return err
		}
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return printJSON(extracted)
	}

	if len(extracted) == 0 {
		fmt.Println("No abstract available, no claims extracted.")
		return nil
	}
	printClaims(extracted)
	return nil
}
