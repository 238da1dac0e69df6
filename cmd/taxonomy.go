package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/mcqgen/internal/taxonomy"
	"github.com/spf13/cobra"
)

var taxonomyCmd = &cobra.Command{
	Use:   "taxonomy",
	Short: "List the error taxonomy used for distractor generation",
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")
		verbose, _ := cmd.Flags().GetBool("verbose")

		if category != "" && !taxonomy.ValidCategory(category) {
			return fmt.Errorf("unknown category %q", category)
		}

		entries := taxonomy.All()
		shown := 0
		fmt.Printf("%-22s  %-18s  %-5s  %s\n", "ID", "Category", "Freq", "Name")
		fmt.Println(strings.Repeat("─", 90))
		for _, e := range entries {
			if category != "" && string(e.Category) != category {
				continue
			}
			shown++
			fmt.Printf("%-22s  %-18s  %4.0f%%  %s\n",
				e.ID, e.Category, e.Frequency*100, e.Name)
			if verbose {
				fmt.Printf("    %s\n", e.Description)
				fmt.Printf("    correct: %s\n", e.ExampleCorrect)
				fmt.Printf("    wrong:   %s\n", e.ExampleWrong)
				fmt.Printf("    applies: %s\n\n", strings.Join(e.Applicability, ", "))
			}
		}
		if shown == 0 {
			fmt.Println("No error patterns in this category.")
		}
		return nil
	},
}

func init() {
	taxonomyCmd.Flags().StringP("category", "c", "", "Filter by category (algebraic, calculus_specific, trigonometric, notational, conceptual)")
	taxonomyCmd.Flags().BoolP("verbose", "v", false, "Show descriptions and examples")
}
