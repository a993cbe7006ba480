package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/isgasho/esta/parser"
	"github.com/isgasho/esta/utils/stringx"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Print the token stream of a source file",
	Long: `Tokenizes an esta source file and prints one token per line with
its position, type, and value. Comments and whitespace are skipped by
the lexer and do not appear.`,
	Args: cobra.ExactArgs(1),
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	tokens, err := parser.TokenizeInput(string(data))
	if err != nil {
		return err
	}

	printTokenStream(tokens)
	return nil
}

func printTokenStream(tokens []parser.Token) {
	for _, tok := range tokens {
		// Right aligned positions keep the type column straight
		pos := stylePosition.Render(stringx.PadLeft(fmt.Sprintf("%d:%d", tok.Line, tok.Column), 7, ' '))
		kind := styleTokenType.Render(tok.Type.String())

		if tok.Value == "" {
			fmt.Printf("%s %s\n", pos, kind)
			continue
		}
		fmt.Printf("%s %s %q\n", pos, kind, tok.Value)
	}
}
