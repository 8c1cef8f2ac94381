package main

import (
	"os"

	"github.com/npillmayer/gentables/moments"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "moments",
		Short:   "Derive closed-form moment integrals for cubic Bézier segments",
		Example: `  gentables moments > moment_integrals.fragment`,
		Args:    cobra.NoArgs,
		RunE:    runMoments,
	}
	rootCmd.AddCommand(cmd)
}

func runMoments(cmd *cobra.Command, args []string) error {
	return moments.Generate(os.Stdout)
}
