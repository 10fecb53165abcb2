package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"anki-mcp-go/internal/schema"

	"github.com/spf13/cobra"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "Print the registered tools and their descriptors",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			exitErr("load config", err)
		}
		registry, j := buildRegistry(cfg, newLogger("error"))
		if j != nil {
			defer j.Close()
		}

		type entry struct {
			Name        string            `json:"name"`
			Description string            `json:"description"`
			InputSchema schema.Descriptor `json:"inputSchema"`
		}
		out := make([]entry, 0, len(registry.Tools()))
		for _, t := range registry.Tools() {
			out = append(out, entry{
				Name:        t.Name,
				Description: t.Description,
				InputSchema: schema.Describe(t.Schema),
			})
		}

		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			exitErr("marshal descriptors", err)
		}
		fmt.Fprintln(os.Stdout, string(data))
	},
}

func init() {
	RootCmd.AddCommand(toolsCmd)
}
