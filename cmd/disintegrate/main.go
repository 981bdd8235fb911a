// Command disintegrate renders the disintegration effect offline, without a
// window, to an animated GIF or a numbered PNG sequence.
package main

import (
	"log"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "disintegrate",
		Short:         "Render the disintegration effect offline.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	addRender(cmd)
	addPrefabs(cmd)
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatalf("disintegrate: %v", err)
	}
}
