package main

import (
	"os"

	"github.com/npillmayer/gentables/quartic"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "quartic",
		Short: "Print Vieta coefficients for the canned quartic root scenarios",
		Args:  cobra.NoArgs,
		RunE:  runQuartic,
	}
	rootCmd.AddCommand(cmd)
}

func runQuartic(cmd *cobra.Command, args []string) error {
	return quartic.Run(os.Stdout)
}
