// Package cli implements the anki-mcp commands.
package cli

import (
	"fmt"
	"os"

	"anki-mcp-go/internal/anki"
	"anki-mcp-go/internal/config"
	"anki-mcp-go/internal/journal"
	"anki-mcp-go/internal/tools"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var configPath string

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "anki-mcp",
	Short: "MCP server for Anki flashcards",
	Long:  "Exposes AnkiConnect as schema-validated MCP tools over stdio, plus one-shot invocation for scripting.",
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"Config file (default: anki-mcp.yaml or ~/.config/anki-mcp/config.yaml)")
}

func loadConfig() (config.Config, error) {
	_ = godotenv.Load()
	return config.Load(configPath)
}

// newLogger builds a stderr logger. Stdout belongs to the stdio transport
// while serving, so nothing else may write there.
func newLogger(level string) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	cfg.OutputPaths = []string{"stderr"}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// buildRegistry assembles the client, optional journal and full tool surface
// from one config.
func buildRegistry(cfg config.Config, logger *zap.Logger) (*tools.Registry, *journal.Journal) {
	client := anki.NewClient(cfg.AnkiConnectURL, cfg.Timeout(), logger)

	var j *journal.Journal
	if cfg.JournalPath != "" {
		opened, err := journal.Open(cfg.JournalPath)
		if err != nil {
			logger.Warn("journal unavailable, running without history",
				zap.String("path", cfg.JournalPath), zap.Error(err))
		} else {
			j = opened
		}
	}

	r := tools.NewRegistry(logger, j)
	tools.RegisterAll(r, client, logger)
	return r, j
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
