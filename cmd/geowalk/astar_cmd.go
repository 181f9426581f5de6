package main

import (
	"fmt"

	"github.com/katalvlaran/geowalk/astar"
	"github.com/katalvlaran/geowalk/geograph"
	"github.com/spf13/cobra"
)

func astarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "astar <source> <target>",
		Short: "Find the shortest path between two nodes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, agent, err := buildWorld(cmd)
			if err != nil {
				return err
			}
			relativeLimit, _ := cmd.Flags().GetFloat64("relative-limit")

			opts := []astar.Option{astar.WithWorldDistanceTiebreak()}
			if relativeLimit > 0 {
				opts = append(opts, astar.WithRelativeLimit(relativeLimit))
			}

			var engine astar.Engine
			result, ok, err := engine.Run(g, agent, geograph.NodeID(args[0]), geograph.NodeID(args[1]), opts...)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "no path found")

				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "total cost: %.2f\n", result.TotalCost)
			for i, n := range result.Path {
				fmt.Fprintf(cmd.OutOrStdout(), "  %d: %s (g=%.2f)\n", i, n, result.GCosts[i])
			}

			return nil
		},
	}
	cmd.Flags().Float64("relative-limit", 0, "elliptical search-space restriction, >= 1 (0 = unrestricted)")

	return cmd
}
