package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"soundcheck/internal/config"
	"soundcheck/internal/emit"
	"soundcheck/internal/gen"
	"soundcheck/internal/logging"
)

func newGenerateCmd() *cobra.Command {
	var (
		configPath string
		seed       int64
		outDir     string
		workers    int
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a dataset and write it as CSV files",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = seed
			}
			if cmd.Flags().Changed("out") {
				cfg.OutDir = outDir
			}
			if cmd.Flags().Changed("workers") {
				cfg.Workers = workers
			}

			log := logging.New(logging.Config{
				Level:  cfg.Log.Level,
				Format: cfg.Log.Format,
				Output: cmd.ErrOrStderr(),
			})
			log.Info().Int64("seed", cfg.Seed).Str("out", cfg.OutDir).
				Int("workers", cfg.Workers).Msg("starting run")

			p, err := gen.New(cfg, log)
			if err != nil {
				return err
			}
			ds, err := p.Run(cmd.Context())
			if err != nil {
				return err
			}
			if err := gen.Validate(cfg, ds); err != nil {
				return fmt.Errorf("generated dataset failed validation: %w", err)
			}

			ref, err := cfg.Reference()
			if err != nil {
				return err
			}
			manifest, err := emit.Write(cfg.OutDir, cfg.Seed, ref, ds)
			if err != nil {
				return err
			}
			log.Info().Str("run_id", manifest.RunID).Str("dir", cfg.OutDir).
				Int("events", len(ds.Events)).Int("ticket_sales", len(ds.TicketSales)).
				Int("event_ratings", len(ds.EventRatings)).Msg("run complete")
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "configuration file (defaults apply when omitted)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "override the configured seed")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "override the configured output directory")
	cmd.Flags().IntVar(&workers, "workers", 0, "override the configured worker count")
	return cmd
}
