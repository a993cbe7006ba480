package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/isgasho/esta/frontend"
)

var checkWatch bool

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Check source files for errors",
	Long: `Parses and validates esta source files, reporting the first error
in each file.

With --watch the command keeps watching a single file and re-checks it
on every change until interrupted.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVarP(&checkWatch, "watch", "w", false, "Watch the file and re-check on change")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	engine, err := newEngine()
	if err != nil {
		return err
	}

	if checkWatch {
		if len(args) != 1 {
			return fmt.Errorf("--watch checks exactly one file, got %d", len(args))
		}
		return watchCheck(engine, args[0])
	}

	failed := 0
	for _, path := range args {
		if _, err := engine.ParseFile(path); err != nil {
			fmt.Printf("%s %s\n", styleError.Render("FAIL"), path)
			fmt.Printf("     %v\n", err)
			failed++
			continue
		}
		fmt.Printf("%s   %s\n", styleSuccess.Render("OK"), path)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(args))
	}
	return nil
}

func watchCheck(engine *frontend.Engine, path string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Println(styleMuted.Render("Watching " + path + ", interrupt to stop"))

	return engine.WatchFile(ctx, path, func(result *frontend.Result, err error) {
		stamp := styleMuted.Render(time.Now().Format("15:04:05"))

		if err != nil {
			fmt.Printf("%s %s %s\n", stamp, styleError.Render("FAIL"), path)
			fmt.Printf("         %v\n", err)
			return
		}
		fmt.Printf("%s %s   %s (%d statements)\n",
			stamp, styleSuccess.Render("OK"), path, len(result.Program.Stmts))
	})
}
