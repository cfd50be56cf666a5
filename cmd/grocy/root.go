package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	grocy "github.com/grocyhq/go-grocy"
	"github.com/grocyhq/go-grocy/api"
	"github.com/grocyhq/go-grocy/config"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *grocy.Client

	// Command flags
	filterExpr  string
	withDetails bool
	minVersion  string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "grocy",
	Short: "A command line client for the Grocy household ERP",
	Long: `grocy is a CLI for a Grocy server. It shows current stock, chores and
tasks, and checks server health, using the same typed client the library
exposes.`,
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = version
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")

	// Add subcommands
	rootCmd.AddCommand(stockCmd)
	rootCmd.AddCommand(choresCmd)
	rootCmd.AddCommand(tasksCmd)
	rootCmd.AddCommand(overviewCmd)
	rootCmd.AddCommand(versionCmd)
}

// initializeApp initializes the configuration and client
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	opts := append(cfg.Grocy.ClientOptions(), api.WithLogger(logger))
	client, err = grocy.New(cfg.Grocy.URL, cfg.Grocy.APIKey, opts...)
	if err != nil {
		return fmt.Errorf("failed to create Grocy client: %w", err)
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format, color only on a real terminal
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}
