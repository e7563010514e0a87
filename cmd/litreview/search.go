// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search [query...]",
	Short: "Search the paper index by topic",
	Long: `Search queries the paper index for works matching a free-text topic,
ranked by citation count. Use --year-from to restrict to recent work.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().Int("max-results", 5, "maximum number of results to return")
	searchCmd.Flags().Int("year-from", 0, "only include papers published in or after this year")
	searchCmd.Flags().Bool("json", false, "output results as JSON")
	searchCmd.Flags().String("out", "", "save results to a YAML report file")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("provide a search query")
	}
	query := strings.Join(args, " ")

	maxResults, _ := cmd.Flags().GetInt("max-results")
	yearFrom, _ := cmd.Flags().GetInt("year-from")

	svc, err := newService()
	if err != nil {
		return err
	}

	papers, err := svc.Search(cmd.Context(), query, maxResults, yearFrom)
	if err != nil {
		return err
	}

	if out, _ := cmd.Flags().GetString("out"); out != "" {
		if err := writeReport(out, "search", args, papers); err != nil {
			return err
		}
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return printJSON(papers)
	}

	if len(papers) == 0 {
		fmt.Println("No papers found.")
		return nil
	}
	printPaperListing(papers)
	return nil
}
