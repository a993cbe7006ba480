package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	estaconfig "github.com/isgasho/esta/core/config"
	estalog "github.com/isgasho/esta/core/log"
	"github.com/isgasho/esta/frontend"
	"github.com/isgasho/esta/utils/stringx"
)

var (
	cfgFile   string
	verbose   bool
	logLevel  string
	logFormat string

	// appConfig holds the loaded configuration file, nil when none was
	// found. Populated before any command runs.
	appConfig *estaconfig.Config
)

var rootCmd = &cobra.Command{
	Use:   "esta",
	Short: "esta - front end for the esta scripting language",
	Long: `esta parses programs written in the esta scripting language and
reports their structure.

Commands:
  parse    - Parse a source file and print the program
  ast      - Print the syntax tree of a source file
  tokens   - Print the token stream of a source file
  check    - Check source files for errors
  repl     - Interactive parse loop
  version  - Show version information`,
	PersistentPreRunE: setupLogging,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", styleError.Render("error:"), err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: discovered esta.toml/esta.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error, fatal)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format (json, text, console, logfmt)")
}

// setupLogging configures the process logger. Precedence is flags over
// configuration file over defaults; --verbose forces debug. Command
// output goes to stdout, logs go to stderr.
func setupLogging(cmd *cobra.Command, args []string) error {
	level := estalog.LevelWarn
	format := estalog.FormatConsole

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	appConfig = cfg

	var cfgLevel, cfgFormat string
	if cfg != nil {
		cfgLevel = cfg.S("log.level")
		cfgFormat = cfg.S("log.format")
	}

	if levelName := stringx.FirstNonEmpty(logLevel, cfgLevel); levelName != "" {
		parsed, err := estalog.ParseLevel(levelName)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", levelName, err)
		}
		level = parsed
	}

	if formatName := stringx.FirstNonEmpty(logFormat, cfgFormat); formatName != "" {
		parsed, err := estalog.ParseFormat(formatName)
		if err != nil {
			return fmt.Errorf("invalid log format %q: %w", formatName, err)
		}
		format = parsed
	}

	if verbose {
		level = estalog.LevelDebug
	}

	estalog.SetDefault(estalog.NewWithConfig(estalog.Config{
		Level:  level,
		Format: format,
		Output: os.Stderr,
		Name:   "esta",
	}))

	return nil
}

// loadConfig loads the file named by --config or ESTA_CONFIG, falling
// back to discovery. Running without any configuration file is fine.
func loadConfig() (*estaconfig.Config, error) {
	path := cfgFile
	if path == "" {
		path = os.Getenv("ESTA_CONFIG")
	}
	if path != "" {
		return estaconfig.LoadWithOptions(path, estaconfig.LoadOptions{
			EnvPrefix: estaconfig.DefaultEnvPrefix,
		})
	}

	cfg, err := estaconfig.Discover(estaconfig.DefaultDiscoveryOptions())
	if err != nil {
		// Discovery is best effort
		return nil, nil
	}
	return cfg, nil
}

// newEngine builds a frontend engine configured for CLI use
func newEngine() (*frontend.Engine, error) {
	opts := frontend.Options{
		Logger:       estalog.GetDefault(),
		CollectStats: true,
	}
	if appConfig != nil {
		opts.MaxSourceSize = appConfig.I("parser.max_source_size")
		opts.WatchDebounce = appConfig.D("watch.debounce")
	}
	return frontend.New(opts)
}

// configString reads a string key from the loaded configuration,
// falling back when no file was found or the key is unset.
func configString(key, fallback string) string {
	if appConfig == nil {
		return fallback
	}
	return appConfig.S(key, fallback)
}
