package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/flowbe/go-qbittorrent-api/config"
	"github.com/flowbe/go-qbittorrent-api/qbittorrent"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *qbittorrent.Client

	appVersion   = "dev"
	appBuildTime = "unknown"

	// Command flags
	filterExpr string
	preset     string
	dryRun     bool
	noConfirm  bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "qbt",
	Short: "A CLI for managing torrents through the qBittorrent WebUI API",
	Long: `qbt talks to a qBittorrent instance over its WebUI API v2 and lets
you list, add, pause, resume and delete torrents, optionally selected
by filter expressions over torrent properties.`,
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// SetVersion records the build version for the version and update
// commands.
func SetVersion(version, buildTime string) {
	appVersion = version
	appBuildTime = buildTime
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&dryRun, "dry-run", "d", false, "perform a dry run without making changes")
}

// initializeApp initializes the configuration and the API client
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// Override dry-run from command line if specified
	if cmd.Flags().Changed("dry-run") {
		cfg.Safety.DryRun = dryRun
	}

	// Connect to qBittorrent
	opts := []qbittorrent.Option{
		qbittorrent.WithTimeout(time.Duration(cfg.QBittorrent.Timeout) * time.Second),
		qbittorrent.WithLogger(logger),
		qbittorrent.WithUserAgent("qbt/" + appVersion),
	}
	if cfg.QBittorrent.TLSSkipVerify {
		opts = append(opts, qbittorrent.WithInsecureSkipVerify())
	}

	client, err = qbittorrent.Connect(cmd.Context(), cfg.QBittorrent.Host,
		cfg.QBittorrent.Username, cfg.QBittorrent.Password, opts...)
	if err != nil {
		return fmt.Errorf("failed to connect to qBittorrent: %w", err)
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "trace":
		level = zerolog.TraceLevel
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

	// Console format; colors only on a real terminal
	useColor := cfg.Color && isatty.IsTerminal(os.Stderr.Fd())
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !useColor,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// getFilterExpression determines the filter expression to use
func getFilterExpression() (string, error) {
	// Priority: command line filter > preset > default
	if filterExpr != "" {
		return filterExpr, nil
	}

	if preset != "" {
		if presetExpr, ok := cfg.Filter.Presets[preset]; ok {
			return presetExpr, nil
		}
		return "", fmt.Errorf("preset '%s' not found in config", preset)
	}

	if cfg.Filter.DefaultExpression != "" {
		return cfg.Filter.DefaultExpression, nil
	}

	return "", fmt.Errorf("no filter expression specified")
}

// selectTorrents fetches all torrents and applies the active filter
// expression to them.
func selectTorrents(ctx context.Context) ([]qbittorrent.Torrent, error) {
	expr, err := getFilterExpression()
	if err != nil {
		return nil, err
	}

	logger.Info().Str("filter", expr).Msg("Selecting torrents")

	return filterTorrents(ctx, expr)
}
