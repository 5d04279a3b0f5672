package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vijay-prabhu/tutormatch/internal/config"
	"github.com/vijay-prabhu/tutormatch/internal/database"
	"github.com/vijay-prabhu/tutormatch/internal/logging"
	"github.com/vijay-prabhu/tutormatch/internal/matcher"
)

var (
	// Version info set from main
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"

	// Global flags
	configPath string
	outputFmt  string
	logLevel   string
)

// SetVersionInfo sets version information from build flags
func SetVersionInfo(v, c, b string) {
	version = v
	commit = c
	buildTime = b
}

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "tutormatch",
	Short: "Find, rank and book tutors from a local marketplace",
	Long: `tutormatch searches a local tutor marketplace and ranks tutors for a student.

It provides:
  - Tutor import, listing and export
  - Criteria search with a browse mode when no criteria are given
  - Explained recommendations scored on rating, subjects, mode, budget and distance
  - Session booking with fee quotes by grade
  - MCP server for AI assistant integration`,
	PersistentPreRunE: setupLogging,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"config file (default: ~/.config/tutormatch/config.toml)")
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", "table",
		"output format (table, json, csv for tutor lists)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"log level (debug, info, warn, error); overrides the config file")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	if configPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			os.Exit(1)
		}
		configPath = filepath.Join(home, ".config", "tutormatch", "config.toml")
	}
}

// setupLogging configures the global logger from the config file. A broken
// config file falls back to default logging so the command can report it.
func setupLogging(cmd *cobra.Command, args []string) error {
	lc := logging.DefaultConfig()
	if cfg, err := config.LoadOrDefault(configPath); err == nil {
		if err := cfg.EnsureDirectories(); err != nil {
			return err
		}
		lc.Level = cfg.Logging.Level
		lc.Format = cfg.Logging.Format
		lc.Output = cfg.Logging.Output
	}
	if logLevel != "" {
		lc.Level = logLevel
	}
	return logging.Initialize(lc)
}

// openStore loads the configuration and opens the tutor database
func openStore() (*config.Config, *database.DB, error) {
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, nil, err
	}

	if err := cfg.EnsureDirectories(); err != nil {
		return nil, nil, err
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	logging.Debug("database opened", zap.String("path", cfg.Database.Path))
	return cfg, db, nil
}

// openMatcher opens the store and wraps it in a Matcher
func openMatcher() (*matcher.Matcher, *database.DB, error) {
	cfg, db, err := openStore()
	if err != nil {
		return nil, nil, err
	}
	return matcher.New(db, cfg), db, nil
}

// versionCmd shows version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tutormatch %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", buildTime)
	},
}
