package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server on stdio",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			exitErr("load config", err)
		}
		logger := newLogger(cfg.LogLevel)
		defer logger.Sync()

		registry, j := buildRegistry(cfg, logger)
		if j != nil {
			defer j.Close()
		}

		s := server.NewMCPServer("anki-mcp", version,
			server.WithToolCapabilities(false),
		)
		registry.Attach(s)

		logger.Info("serving on stdio",
			zap.String("anki_connect", cfg.AnkiConnectURL),
			zap.Int("tools", len(registry.Tools())))

		if err := server.ServeStdio(s); err != nil {
			exitErr("serve", err)
		}
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)
}
