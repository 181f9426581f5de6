package main

import (
	"fmt"

	"github.com/katalvlaran/geowalk/geograph"
	"github.com/katalvlaran/geowalk/gridworld"
	"github.com/spf13/cobra"
)

// buildWorld constructs a geograph.Graph and a uniform Agent from the
// persistent flags shared by every subcommand.
func buildWorld(cmd *cobra.Command) (geograph.Graph, gridworld.UniformAgent, error) {
	shape, _ := cmd.Flags().GetString("shape")
	blockedList, _ := cmd.Flags().GetStringSlice("blocked")

	switch shape {
	case "square":
		rows, _ := cmd.Flags().GetInt("rows")
		cols, _ := cmd.Flags().GetInt("cols")
		diagonal, _ := cmd.Flags().GetBool("diagonal")

		blocked := make(map[geograph.NodeID]bool, len(blockedList))
		for _, id := range blockedList {
			blocked[geograph.NodeID(id)] = true
		}

		g, err := gridworld.NewSquareGrid(rows, cols, diagonal, blocked)
		if err != nil {
			return nil, gridworld.UniformAgent{}, err
		}

		return g, gridworld.NewUniformAgent(g, 1, false), nil

	case "hex":
		radius, _ := cmd.Flags().GetInt("radius")

		blocked := make(map[geograph.NodeID]bool, len(blockedList))
		for _, id := range blockedList {
			blocked[geograph.NodeID(id)] = true
		}

		g, err := gridworld.NewHexGrid(radius, 1, blocked)
		if err != nil {
			return nil, gridworld.UniformAgent{}, err
		}

		return g, gridworld.NewUniformAgent(g, 1, false), nil

	default:
		return nil, gridworld.UniformAgent{}, fmt.Errorf("geowalk: unknown shape %q", shape)
	}
}
