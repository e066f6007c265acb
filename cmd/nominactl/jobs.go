package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/finca-nomina/nomina_backend/internal/jobs"
	"github.com/hibiken/asynq"
	"github.com/spf13/cobra"
)

// NewJobsCommand creates the jobs command group.
func NewJobsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "Queue background jobs",
	}
	cmd.AddCommand(newEnqueueQuincenaCommand(rootOpts))
	return cmd
}

func newEnqueueQuincenaCommand(rootOpts *RootOptions) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "enqueue-quincena",
		Short: "Queue a check that creates the current and next quincena",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var ref time.Time
			if date != "" {
				parsed, err := time.Parse(time.DateOnly, date)
				if err != nil {
					return fmt.Errorf("invalid --date %q, expected YYYY-MM-DD", date)
				}
				ref = parsed
			}

			cfg, err := rootOpts.loadConfig()
			if err != nil {
				return err
			}
			if cfg.RedisAddr == "" {
				return errors.New("REDIS_ADDR is not set")
			}

			client := jobs.NewClient(asynq.RedisClientOpt{Addr: cfg.RedisAddr})
			defer client.Close()

			info, err := client.EnqueueEnsureQuincena(cmd.Context(), ref)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "queued %s as %s on %s\n", info.Type, info.ID, info.Queue)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "reference date (YYYY-MM-DD), defaults to the day the job runs")
	return cmd
}
