package main

import (
	"github.com/spf13/cobra"

	"soundcheck/internal/config"
	"soundcheck/internal/emit"
	"soundcheck/internal/gen"
	"soundcheck/internal/logging"
)

func newValidateCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "validate <dir>",
		Short: "Re-check a previously emitted dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			log := logging.New(logging.Config{
				Level:  cfg.Log.Level,
				Format: cfg.Log.Format,
				Output: cmd.ErrOrStderr(),
			})

			ds, err := emit.Read(args[0])
			if err != nil {
				return err
			}
			if err := gen.Validate(cfg, ds); err != nil {
				return err
			}

			manifest, err := emit.ReadManifest(args[0])
			if err != nil {
				return err
			}
			log.Info().Str("run_id", manifest.RunID).Int64("seed", manifest.Seed).
				Int("events", len(ds.Events)).Msg("dataset is consistent")
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "configuration file (defaults apply when omitted)")
	return cmd
}
