package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/isgasho/esta/ast"
	estalog "github.com/isgasho/esta/core/log"
	"github.com/isgasho/esta/frontend"
	"github.com/isgasho/esta/parser"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive parse loop",
	Long: `Starts an interactive loop that parses each line and prints the
result. Lines that do not form a statement are retried as bare
expressions, so "1 + 2" works without a statement around it.

Commands inside the loop:
  :ast          - Toggle syntax tree dumps
  :tokens       - Toggle token stream dumps
  :load <file>  - Parse a source file
  :help         - Show help
  :quit         - Leave the loop`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	engine, err := newEngine()
	if err != nil {
		return err
	}

	exprParser, err := parser.New(parser.Options{Logger: estalog.GetDefault()})
	if err != nil {
		return err
	}

	session := uuid.New().String()[:8]

	fmt.Println(styleBanner.Render("esta v" + Version))
	fmt.Println(styleMuted.Render("session " + session + ", :help for commands, :quit to leave"))

	showTree := false
	showTokens := false
	prompt := stylePrompt.Render(configString("repl.prompt", "esta> "))
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print(prompt)

		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch {
		case line == ":quit" || line == ":q":
			return nil

		case line == ":help":
			fmt.Println(":ast toggles tree dumps, :tokens toggles token dumps")
			fmt.Println(":load <file> parses a file, :quit leaves the loop")
			continue

		case line == ":ast":
			showTree = !showTree
			if showTree {
				fmt.Println(styleMuted.Render("tree dumps on"))
			} else {
				fmt.Println(styleMuted.Render("tree dumps off"))
			}
			continue

		case line == ":tokens":
			showTokens = !showTokens
			if showTokens {
				fmt.Println(styleMuted.Render("token dumps on"))
			} else {
				fmt.Println(styleMuted.Render("token dumps off"))
			}
			continue

		case strings.HasPrefix(line, ":load"):
			replLoad(engine, strings.TrimSpace(strings.TrimPrefix(line, ":load")), showTree)
			continue
		}

		replLine(engine, exprParser, session, line, showTree, showTokens)
	}
}

// replLine parses one input line, first as statements, then as a bare
// expression
func replLine(engine *frontend.Engine, exprParser *parser.Parser, session, line string, showTree, showTokens bool) {
	if showTokens {
		if tokens, err := parser.TokenizeInput(line); err == nil {
			printTokenStream(tokens)
		}
	}

	result, err := engine.ParseSource("repl:"+session, line)
	if err == nil {
		if showTree {
			fmt.Print(ast.ASTToString(result.Program))
		} else {
			fmt.Println(result.Program.String())
		}
		return
	}

	expr, exprErr := exprParser.ParseExpression(line)
	if exprErr == nil {
		if showTree {
			fmt.Println(ast.ASTToString(expr))
		} else {
			fmt.Println(expr.String())
		}
		return
	}

	// The statement error carries the more useful position
	fmt.Println(styleError.Render("error:") + " " + err.Error())
}

// replLoad parses a whole source file through the engine
func replLoad(engine *frontend.Engine, path string, showTree bool) {
	if path == "" {
		fmt.Println(styleMuted.Render("usage: :load <file>"))
		return
	}

	result, err := engine.ParseFile(path)
	if err != nil {
		fmt.Println(styleError.Render("error:") + " " + err.Error())
		return
	}

	if showTree {
		fmt.Print(ast.ASTToString(result.Program))
	} else {
		fmt.Println(result.Program.String())
	}
	fmt.Println(styleMuted.Render(fmt.Sprintf("%d statements in %s", len(result.Program.Stmts), path)))
}
