// Gray Logic Assist - Home Assistant assistant bridge
//
// graylogic-assist speaks line-delimited JSON-RPC on stdin/stdout and
// translates assistant tool calls into Home Assistant REST API requests.
// It is designed to be spawned as a subprocess by an assistant host and
// exits cleanly when its input closes.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nerrad567/gray-logic-assist/internal/area"
	"github.com/nerrad567/gray-logic-assist/internal/hass"
	"github.com/nerrad567/gray-logic-assist/internal/infrastructure/config"
	"github.com/nerrad567/gray-logic-assist/internal/infrastructure/logging"
	"github.com/nerrad567/gray-logic-assist/internal/mcp"
	"github.com/nerrad567/gray-logic-assist/internal/report"
	"github.com/nerrad567/gray-logic-assist/internal/tools"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"     // Semantic version (e.g., "1.0.0")
	commit  = "unknown" // Git commit hash
	date    = "unknown" // Build date
)

const serverName = "graylogic-assist"

var (
	flagConfig    string
	flagURL       string
	flagToken     string
	flagLogLevel  string
	flagLogFormat string
	flagLogFile   string
)

var rootCmd = &cobra.Command{
	Use:   "graylogic-assist",
	Short: "Home Assistant bridge for assistant tool calls",
	Long: `graylogic-assist exposes Home Assistant lights and switches as assistant
tools over a line-delimited JSON-RPC session on stdin/stdout. All diagnostics
go to stderr so stdout stays a clean protocol stream.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context())
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("graylogic-assist %s (commit %s, built %s)\n", version, commit, date)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (env: ASSIST_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&flagURL, "url", "", "Home Assistant base URL (env: ASSIST_HASS_URL)")
	rootCmd.PersistentFlags().StringVar(&flagToken, "token", "", "Home Assistant long-lived access token (env: ASSIST_HASS_TOKEN)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (env: ASSIST_LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", "", "Log format: text, json (env: ASSIST_LOG_FORMAT)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Also append diagnostics to this file (env: ASSIST_LOG_FILE)")
	rootCmd.AddCommand(versionCmd)
}

func main() {
	// Cancel on interrupt signals so an orphaned session shuts down cleanly.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run is the actual application logic, separated from the command wiring for
// testability. It builds the upstream client and tool registry, then serves
// the protocol loop until stdin closes or the context is cancelled.
func run(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.New(cfg.Logging, version)
	if err != nil {
		return fmt.Errorf("initialising logger: %w", err)
	}
	defer func() {
		if closeErr := log.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "Error closing log file: %v\n", closeErr)
		}
	}()

	log.Info("starting graylogic-assist",
		"version", version,
		"commit", commit,
		"build_date", date,
		"home_assistant_url", cfg.HomeAssistant.URL,
	)

	client := hass.NewClient(cfg.HomeAssistant.URL, cfg.HomeAssistant.Token, cfg.GetTimeout())
	resolver := area.NewResolver(client, log)
	formatter := report.NewFormatter(client, resolver, log)
	registry := tools.NewRegistry(client, formatter, log)
	server := mcp.NewServer(registry, log, serverName, version)

	if err := server.Serve(ctx, os.Stdin, os.Stdout); err != nil {
		return fmt.Errorf("serving: %w", err)
	}

	log.Info("graylogic-assist stopped")
	return nil
}

// loadConfig loads configuration and layers CLI flags on top of file and
// environment values.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath())
	if err != nil {
		return nil, err
	}

	if flagURL != "" {
		cfg.HomeAssistant.URL = flagURL
	}
	if flagToken != "" {
		cfg.HomeAssistant.Token = flagToken
	}
	if flagLogLevel != "" {
		cfg.Logging.Level = flagLogLevel
	}
	if flagLogFormat != "" {
		cfg.Logging.Format = flagLogFormat
	}
	if flagLogFile != "" {
		cfg.Logging.File = flagLogFile
	}

	return cfg, nil
}

// configPath returns the configuration file path from flag or environment.
// An empty path means defaults plus environment only, which is the normal
// mode when spawned by an assistant host.
func configPath() string {
	if flagConfig != "" {
		return flagConfig
	}
	return os.Getenv("ASSIST_CONFIG")
}
