package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"soundcheck/internal/emit"
)

func newDictCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "dict",
		Short: "Write the data dictionary for the emitted files",
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "-" {
				return emit.WriteDictionary(cmd.OutOrStdout())
			}
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create %s: %w", out, err)
			}
			if err := emit.WriteDictionary(f); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "data_dictionary.md", "output path, - for stdout")
	return cmd
}
