package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var callArgsJSON string

var callCmd = &cobra.Command{
	Use:   "call NAME",
	Short: "Invoke one tool directly, without the MCP transport",
	Long:  `Invoke a registered tool by name with JSON arguments, e.g. anki-mcp call find_notes --args '{"query":"deck:Japanese"}'.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, cmdArgs []string) {
		cfg, err := loadConfig()
		if err != nil {
			exitErr("load config", err)
		}
		registry, j := buildRegistry(cfg, newLogger(cfg.LogLevel))
		if j != nil {
			defer j.Close()
		}

		name := cmdArgs[0]
		tool, ok := registry.Lookup(name)
		if !ok {
			exitErr("lookup tool", fmt.Errorf("unknown tool %q, see anki-mcp tools", name))
		}

		args := map[string]any{}
		if callArgsJSON != "" {
			if err := json.Unmarshal([]byte(callArgsJSON), &args); err != nil {
				exitErr("parse --args", err)
			}
		}

		ctx, cancel := context.WithTimeout(context.Background(), 2*cfg.Timeout()+10*time.Second)
		defer cancel()

		result, err := registry.Call(ctx, tool, args)
		if err != nil {
			exitErr(name, err)
		}
		switch v := result.(type) {
		case string:
			fmt.Fprintln(os.Stdout, v)
		default:
			data, err := json.MarshalIndent(v, "", "  ")
			if err != nil {
				exitErr("marshal result", err)
			}
			fmt.Fprintln(os.Stdout, string(data))
		}
	},
}

func init() {
	callCmd.Flags().StringVarP(&callArgsJSON, "args", "a", "", "Tool arguments as a JSON object")
	RootCmd.AddCommand(callCmd)
}
