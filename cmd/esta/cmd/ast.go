package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/isgasho/esta/ast"
)

var astCmd = &cobra.Command{
	Use:   "ast <file>",
	Short: "Print the syntax tree of a source file",
	Long: `Parses an esta source file and prints its syntax tree as an
indented dump with one statement per line and expressions inline.`,
	Args: cobra.ExactArgs(1),
	RunE: runAST,
}

func init() {
	rootCmd.AddCommand(astCmd)
}

func runAST(cmd *cobra.Command, args []string) error {
	engine, err := newEngine()
	if err != nil {
		return err
	}

	result, err := engine.ParseFile(args[0])
	if err != nil {
		return err
	}

	fmt.Print(ast.ASTToString(result.Program))
	return nil
}
