// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var abstractCmd = &cobra.Command{
	Use:   "abstract [paper-id]",
	Short: "Fetch a paper's metadata and abstract",
	Long: `Abstract fetches one paper by its index id (a bare work id like
W2741809807 or a full index URL) and prints its metadata and abstract.`,
	Args: cobra.ExactArgs(1),
	RunE: runAbstract,
}

func init() {
	abstractCmd.Flags().Bool("json", false, "output the paper as JSON")
	abstractCmd.Flags().String("out", "", "save the paper to a YAML report file")

	rootCmd.AddCommand(abstractCmd)
}

func runAbstract(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}

	paper, err := svc.GetAbstract(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if out, _ := cmd.Flags().GetString("out"); out != "" {
		if err := writeReport(out, "abstract", args, paper); err != nil {
			return err
		}
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return printJSON(paper)
	}

	fmt.Printf("%s (%d)\n", paper.Title, paper.Year)
	fmt.Println(formatAuthors(paper.Authors))
	if paper.DOI != "" {
		fmt.Printf("DOI: %s\n", paper.DOI)
	}
	fmt.Printf("Cited by %d\n\n", paper.CitedByCount)
	if paper.Abstract == "" {
		fmt.Println("No abstract available.")
	} else {
		fmt.Println(paper.Abstract)
	}
	return nil
}
