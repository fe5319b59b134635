package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"qcalc/internal/mcpserver"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the calculator as a Model Context Protocol (MCP) server",
	Long: `Starts an MCP server on Standard Input/Output exposing two tools:

- evaluate: evaluate an expression (optionally in degrees)
- history:  list the successful evaluations of this server session`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup(cmd)
		if err != nil {
			return err
		}
		defer env.close()

		// Ensure logs don't corrupt JSON-RPC on Stdout
		log.SetOutput(os.Stderr)
		return mcpserver.New(env.session, Version, env.logger).ServeStdio()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
