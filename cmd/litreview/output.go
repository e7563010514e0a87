// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/pdiddy/litreview/pkg/types"
)

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// formatAuthors joins up to five author names, appending "et al." when
// the list is longer.
func formatAuthors(authors []string) string {
	if len(authors) == 0 {
		return "unknown authors"
	}
	if len(authors) <= 5 {
		return strings.Join(authors, ", ")
	}
	return strings.Join(authors[:5], ", ") + " et al."
}

// printPaperListing writes a numbered listing of papers.
func printPaperListing(papers []types.Paper) {
	for i, p := range papers {
		fmt.Printf("%d. %s (%d)\n", i+1, p.Title, p.Year)
		fmt.Printf("   %s\n", formatAuthors(p.Authors))
		fmt.Printf("   %s", p.ID)
		if p.CitedByCount > 0 {
			fmt.Printf("  cited by %d", p.CitedByCount)
		}
		fmt.Println()
	}
	fmt.Printf("\n%d results\n", len(papers))
}

// printClaims writes a numbered listing of claims with kind and polarity.
func printClaims(claimList []types.Claim) {
	for i, c := range claimList {
		label := string(c.Kind)
		if c.Polarity != types.PolarityNone {
			label += "/" + string(c.Polarity)
		}
		fmt.Printf("%d. [%s] %s\n", i+1, label, c.Text)
	}
}

// printClaimPairs writes claim pairs with their overlap scores.
func printClaimPairs(pairs []types.ClaimPair) {
	for i, pair := range pairs {
		fmt.Printf("%d. overlap %.2f\n", i+1, pair.OverlapScore)
		fmt.Printf("   %s: %s\n", pair.A.PaperID, pair.A.Text)
		fmt.Printf("   %s: %s\n", pair.B.PaperID, pair.B.Text)
	}
}
