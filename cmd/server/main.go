// Package main is the entry point of the game session server and its
// grid tools.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/damn090909-boop/Simple-Game/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:   "simple-game",
	Short: "Simple Game session server",
	Long:  `Simple Game runs a tile-grid session with pathfinding, building and portals, and ships tools to inspect saved grids.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(gridCmd)
	rootCmd.AddCommand(versionCmd)
}
