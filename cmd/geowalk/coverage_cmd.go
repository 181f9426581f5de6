package main

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/geowalk/coverage"
	"github.com/katalvlaran/geowalk/geograph"
	"github.com/spf13/cobra"
)

func coverageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coverage <source> <max-cost>",
		Short: "List every node reachable from a source within a cost budget",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, agent, err := buildWorld(cmd)
			if err != nil {
				return err
			}

			var maxCost float64
			if _, err := fmt.Sscanf(args[1], "%f", &maxCost); err != nil {
				return fmt.Errorf("geowalk: invalid max-cost %q: %w", args[1], err)
			}

			var engine coverage.Engine
			result, ok, err := engine.Run(g, agent, geograph.NodeID(args[0]), maxCost)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "no coverage result")

				return nil
			}

			ids := make([]string, 0, len(result.Nodes))
			for n := range result.Nodes {
				ids = append(ids, string(n))
			}
			sort.Strings(ids)

			fmt.Fprintf(cmd.OutOrStdout(), "%d nodes reachable within %.2f:\n", len(ids), maxCost)
			for _, id := range ids {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s (cost %.2f)\n", id, result.Nodes[geograph.NodeID(id)])
			}

			return nil
		},
	}

	return cmd
}
