// Package main is the entrypoint for the user directory API server.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagHost string
	flagPort int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "userdir",
	Short:         "In-memory user directory HTTP API",
	Long:          "userdir serves a small JSON API to list, fetch and create users held in memory.",
	SilenceErrors: true,
	SilenceUsage:  true,
	// Without a subcommand the server starts.
	RunE: runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "Print the registered HTTP routes",
	Args:  cobra.NoArgs,
	RunE:  runRoutes,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagHost, "host", "", "listen host (overrides APP_HOST)")
	rootCmd.PersistentFlags().IntVar(&flagPort, "port", 0, "listen port (overrides APP_PORT)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(routesCmd)
}
