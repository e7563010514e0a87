// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/litreview/pkg/types"
)

var citationsCmd = &cobra.Command{
	Use:   "citations [paper-id]",
	Short: "Build a one-hop citation graph around a paper",
	Long: `Citations fetches a paper and its citation neighborhood: the works it
references, the works citing it, or both. Neighbors whose metadata cannot
be fetched are omitted from the graph.`,
	Args: cobra.ExactArgs(1),
	RunE: runCitations,
}

func init() {
	citationsCmd.Flags().String("direction", "both", "references, cited_by, or both")
	citationsCmd.Flags().Int("max-per-direction", 10, "maximum neighbors per direction")
	citationsCmd.Flags().Bool("json", false, "output the graph as JSON")
	citationsCmd.Flags().String("out", "", "save the graph to a YAML report file")

	rootCmd.AddCommand(citationsCmd)
}

func runCitations(cmd *cobra.Command, args []string) error {
	direction, _ := cmd.Flags().GetString("direction")
	maxPerDirection, _ := cmd.Flags().GetInt("max-per-direction")

	svc, err := newService()
	if err != nil {
		return err
	}

	g, err := svc.GetCitations(cmd.Context(), args[0], direction, maxPerDirection)
	if err != nil {
		return err
	}

	if out, _ := cmd.Flags().GetString("out"); out != "" {
		if err := writeReport(out, "citations", args, g); err != nil {
			return err
		}
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return printJSON(g)
	}

	byID := make(map[string]types.CitationNode, len(g.Nodes))
	for _, node := range g.Nodes {
		byID[node.ID] = node
	}

	root := byID[g.RootID]
	fmt.Printf("%s (%d)  %s\n", root.Title, root.Year, root.ID)

	var references, citedBy []types.CitationEdge
	for _, edge := range g.Edges {
		if edge.Direction == types.DirectionReferences {
			references = append(references, edge)
		} else {
			citedBy = append(citedBy, edge)
		}
	}

	fmt.Printf("\nReferences (%d)\n", len(references))
	for i, edge := range references {
		node := byID[edge.ToID]
		fmt.Printf("%d. %s (%d)  %s\n", i+1, node.Title, node.Year, node.ID)
	}

	fmt.Printf("\nCited by (%d)\n", len(citedBy))
	for i, edge := range citedBy {
		node := byID[edge.FromID]
		fmt.Printf("%d. %s (%d)  %s\n", i+1, node.Title, node.Year, node.ID)
	}
	return nil
}
