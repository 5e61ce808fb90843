package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "soundcheck",
		Short:         "Reproducible live-events dataset generator",
		Long:          "soundcheck generates a correlated, referentially consistent live-events dataset (cities, users, artists, venues, tours, events, ticket sales, ratings) from a single seed. The same seed and configuration always produce byte-identical output.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newValidateCmd())
	root.AddCommand(newDictCmd())
	return root
}
