package main

import (
	"os"

	"github.com/npillmayer/gentables/mirroring"
	"github.com/spf13/cobra"
)

var mirroringFlags = struct {
	dir *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "mirroring",
		Short:   "Generate the bidi mirroring pair table",
		Example: `  gentables mirroring > mirroring_pairs.fragment`,
		Args:    cobra.NoArgs,
		RunE:    runMirroring,
	}
	mirroringFlags.dir = cmd.Flags().StringP("dir", "d", ".", "cache directory for "+mirroring.FileName)
	rootCmd.AddCommand(cmd)
}

func runMirroring(cmd *cobra.Command, args []string) error {
	return mirroring.Generate(os.Stdout, *mirroringFlags.dir)
}
