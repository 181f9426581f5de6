package main

import (
	"fmt"

	"github.com/katalvlaran/geowalk/floodfill"
	"github.com/katalvlaran/geowalk/geograph"
	"github.com/spf13/cobra"
)

func floodfillCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "floodfill <source>",
		Short: "Flood-fill from a source, rejecting any node listed as blocked",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, agent, err := buildWorld(cmd)
			if err != nil {
				return err
			}
			// Reuse the agent's occupancy rule as the flood-fill predicate:
			// a node "matches" when the same agent could legally stand on it.
			match := func(n geograph.NodeID) bool { return agent.CanOccupy(n) }

			var walk floodfill.Walk
			reached, err := walk.Run(g, geograph.NodeID(args[0]), match)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d nodes reached:\n", len(reached))
			for _, n := range reached {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", n)
			}

			return nil
		},
	}

	return cmd
}
