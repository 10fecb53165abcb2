package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "0.2.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the anki-mcp version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("anki-mcp " + version)
	},
}

func init() {
	RootCmd.AddCommand(versionCmd)
}
