// Command geowalk is a demo harness for the geowalk engines. It builds a
// square or hex grid world from flags and runs one of astar, coverage,
// floodfill, or visibility against it, printing the result as text.
package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "geowalk",
		Short: "Run geowalk's search engines against a generated grid world",
	}
	cmd.PersistentFlags().String("shape", "square", `grid shape: "square" or "hex"`)
	cmd.PersistentFlags().Int("rows", 10, "grid rows (square grids)")
	cmd.PersistentFlags().Int("cols", 10, "grid columns (square grids)")
	cmd.PersistentFlags().Int("radius", 5, "grid radius (hex grids)")
	cmd.PersistentFlags().Bool("diagonal", true, "allow diagonal movement (square grids)")
	cmd.PersistentFlags().StringSlice("blocked", nil, `comma-separated blocked node IDs; quote each ID, since IDs contain a comma, e.g. "2,2","3,4"`)

	cmd.SetOut(os.Stdout)
	cmd.AddCommand(astarCmd(), coverageCmd(), floodfillCmd(), visibilityCmd())

	return cmd
}
