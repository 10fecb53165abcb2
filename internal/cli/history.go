package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"anki-mcp-go/internal/journal"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent mutating tool calls from the journal",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			exitErr("load config", err)
		}
		if cfg.JournalPath == "" {
			exitErr("history", fmt.Errorf("no journal configured; set journal_path or ANKI_MCP_JOURNAL"))
		}

		j, err := journal.Open(cfg.JournalPath)
		if err != nil {
			exitErr("open journal", err)
		}
		defer j.Close()

		entries, err := j.Recent(context.Background(), historyLimit)
		if err != nil {
			exitErr("read journal", err)
		}
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			exitErr("marshal history", err)
		}
		fmt.Fprintln(os.Stdout, string(data))
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Number of entries to show")
	RootCmd.AddCommand(historyCmd)
}
