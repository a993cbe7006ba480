package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/isgasho/esta/ast"
	"github.com/isgasho/esta/frontend"
)

var (
	parseShowStats bool
	parseDumpTree  bool
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>...",
	Short: "Parse source files and print the programs",
	Long: `Parses esta source files and prints each program in its compact
source-like rendering.

The rendering shows the desugared program: initialized declarations,
for loops, and bare calls appear in their lowered form.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().BoolVar(&parseShowStats, "stats", false, "Show node statistics")
	parseCmd.Flags().BoolVar(&parseDumpTree, "dump", false, "Print the indented syntax tree instead")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	engine, err := newEngine()
	if err != nil {
		return err
	}

	for i, path := range args {
		result, err := engine.ParseFile(path)
		if err != nil {
			return err
		}

		if len(args) > 1 {
			if i > 0 {
				fmt.Println()
			}
			fmt.Println(styleHeading.Render(path))
		}

		if parseDumpTree {
			fmt.Print(ast.ASTToString(result.Program))
		} else {
			fmt.Println(result.Program.String())
		}

		if parseShowStats {
			fmt.Println()
			printStats(result)
		}
	}

	return nil
}

func printStats(result *frontend.Result) {
	fmt.Println(styleHeading.Render("Statistics"))
	fmt.Printf("  %-12s %d\n", "statements", result.Stats.Statements)
	fmt.Printf("  %-12s %d\n", "functions", result.Stats.Functions)
	fmt.Printf("  %-12s %d\n", "structs", result.Stats.Structs)
	fmt.Printf("  %-12s %d\n", "identifiers", result.Stats.Identifiers)
	fmt.Printf("  %-12s %d\n", "literals", result.Stats.Literals)
	fmt.Printf("  %-12s %d\n", "calls", result.Stats.Calls)
	fmt.Printf("  %-12s %s\n", "parse time", result.ParseTime)
}
