package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vijay-prabhu/tutormatch/internal/logging"
	"github.com/vijay-prabhu/tutormatch/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server (stdio transport)",
	Long: `Start the MCP (Model Context Protocol) server using stdio transport.

This lets AI assistants search, rank and quote tutors from your local pool.
Logs go to stderr; stdout carries only protocol frames.

Add to Claude Desktop config (~/Library/Application Support/Claude/claude_desktop_config.json):

{
  "mcpServers": {
    "tutormatch": {
      "command": "/path/to/tutormatch",
      "args": ["mcp"]
    }
  }
}`,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	cfg, db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	if !cfg.MCP.Enabled {
		return fmt.Errorf("MCP server is disabled in config (set mcp.enabled = true)")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := db.Health(ctx); err != nil {
		return fmt.Errorf("database unavailable: %w", err)
	}
	schema, err := db.SchemaVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	logging.Info("serving tutor catalog",
		zap.String("database", cfg.Database.Path),
		zap.Int("schema_version", schema))

	server := mcp.New(db, cfg)
	server.Version = version

	go func() {
		<-ctx.Done()
		// Stdin reads do not observe ctx; closing it ends Serve
		os.Stdin.Close()
	}()

	err = server.Start(ctx)
	if errors.Is(err, context.Canceled) {
		logging.Info("mcp server interrupted")
		return nil
	}
	return err
}
