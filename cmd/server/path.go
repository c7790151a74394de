package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/damn090909-boop/Simple-Game/internal/domain"
	"github.com/damn090909-boop/Simple-Game/internal/engine"
	"github.com/damn090909-boop/Simple-Game/internal/systems"
	"github.com/damn090909-boop/Simple-Game/internal/version"
)

var (
	pathFrom     string
	pathTo       string
	pathSeed     int64
	pathMapID    string
	pathSnapshot string
	pathDraw     bool
)

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Find the shortest walkable path between two cells",
	Example: `  simple-game path --from 5,5 --to 15,15
  simple-game path --snapshot snapshots/grid_main_world_1700000000000.sggr --from 1,1 --to 3,3 --draw`,
	RunE: runPath,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.String())
	},
}

func init() {
	pathCmd.Flags().StringVar(&pathFrom, "from", "", "start cell as col,row")
	pathCmd.Flags().StringVar(&pathTo, "to", "", "goal cell as col,row")
	pathCmd.Flags().Int64Var(&pathSeed, "seed", 1, "generation seed")
	pathCmd.Flags().StringVar(&pathMapID, "map", string(domain.MainWorld), "map id to generate")
	pathCmd.Flags().StringVar(&pathSnapshot, "snapshot", "", "read the grid from a snapshot file")
	pathCmd.Flags().BoolVar(&pathDraw, "draw", false, "print the grid with the path marked as '*'")
	_ = pathCmd.MarkFlagRequired("from")
	_ = pathCmd.MarkFlagRequired("to")
}

func runPath(cmd *cobra.Command, args []string) error {
	from, err := domain.ParseGridPos(pathFrom)
	if err != nil {
		return err
	}
	to, err := domain.ParseGridPos(pathTo)
	if err != nil {
		return err
	}

	grid, err := loadGrid(pathSnapshot, pathMapID, pathSeed)
	if err != nil {
		return err
	}

	path, err := systems.FindPath(grid, from, to)
	if err != nil && !errors.Is(err, domain.ErrNoPath) {
		return err
	}

	out := cmd.OutOrStdout()
	if pathDraw {
		for _, row := range drawPath(grid, path) {
			fmt.Fprintln(out, row)
		}
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(engine.NewPathView(from, to, path, err == nil))
}

// drawPath renders the grid with the path cells replaced by '*'.
func drawPath(grid *domain.Grid, path domain.Path) []string {
	rows := engine.RenderRows(grid)
	for _, c := range path {
		line := []byte(rows[c.Row])
		line[c.Col] = '*'
		rows[c.Row] = string(line)
	}
	return rows
}
