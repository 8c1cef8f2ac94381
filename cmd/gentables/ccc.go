package main

import (
	"os"

	"github.com/npillmayer/gentables/ccc"
	"github.com/spf13/cobra"
)

var cccFlags = struct {
	dir *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "ccc",
		Short:   "Generate the canonical combining class range table",
		Example: `  gentables ccc > ccc_table.fragment`,
		Args:    cobra.NoArgs,
		RunE:    runCCC,
	}
	cccFlags.dir = cmd.Flags().StringP("dir", "d", ".", "cache directory for "+ccc.FileName)
	rootCmd.AddCommand(cmd)
}

func runCCC(cmd *cobra.Command, args []string) error {
	return ccc.Generate(os.Stdout, *cccFlags.dir)
}
