package main

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/geowalk/geograph"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/geowalk/visibility"
)

func visibilityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "visibility <source>",
		Short: "List nodes visible from a source, treating blocked nodes as opaque",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, agent, err := buildWorld(cmd)
			if err != nil {
				return err
			}
			threshold, _ := cmd.Flags().GetFloat64("threshold")
			isOpaque := func(n geograph.NodeID) bool { return !agent.CanOccupy(n) }

			var engine visibility.Engine
			opts := []visibility.Option{}
			if threshold > 0 {
				opts = append(opts, visibility.WithThreshold(threshold))
			}

			result, ok, err := engine.Run(g, geograph.NodeID(args[0]), isOpaque, opts...)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "no visibility result")

				return nil
			}

			ids := make([]string, 0, len(result.Visible))
			for _, n := range result.Visible {
				ids = append(ids, string(n))
			}
			sort.Strings(ids)

			fmt.Fprintf(cmd.OutOrStdout(), "%d nodes visible:\n", len(ids))
			for _, id := range ids {
				arc := result.Arcs[geograph.NodeID(id)]
				fmt.Fprintf(cmd.OutOrStdout(), "  %s (visible fraction %.2f)\n", id, arc.VisibleFraction)
			}

			return nil
		},
	}
	cmd.Flags().Float64("threshold", 0, "minimum visible fraction, in (0, 1] (0 = use the engine default)")

	return cmd
}
