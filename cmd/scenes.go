package cmd

import (
	"fmt"

	"github.com/df07/go-raytracer/pkg/scene"
	"github.com/spf13/cobra"
)

func newScenesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scenes",
		Short: "List the built-in scenes",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range scene.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}
