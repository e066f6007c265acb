package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/finca-nomina/nomina_backend/internal/core/services"
	"github.com/finca-nomina/nomina_backend/internal/platform/database"
	"github.com/finca-nomina/nomina_backend/internal/repositories/database/pgsql"
	"github.com/finca-nomina/nomina_backend/internal/seed"
	"github.com/spf13/cobra"
)

// adminPasswordEnv lets scripts pass the password without exposing it in the process list.
const adminPasswordEnv = "NOMINA_ADMIN_PASSWORD"

type seedOptions struct {
	catalogFile string
	admin       seed.Admin
}

// NewSeedCommand creates the seed command.
func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &seedOptions{}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load payroll variables, labors and the first administrator",
		Long: `Load the starter catalog: payroll variable values, the labor catalog with
opening prices and, with --admin-username, a SUPER_ADMIN user.

Running it again skips whatever already exists.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd, rootOpts, opts)
		},
	}

	cmd.Flags().StringVar(&opts.catalogFile, "file", "", "YAML catalog to load instead of the built-in one")
	cmd.Flags().StringVar(&opts.admin.Username, "admin-username", "", "create a SUPER_ADMIN with this username")
	cmd.Flags().StringVar(&opts.admin.Password, "admin-password", "", "password of the admin user (or set "+adminPasswordEnv+")")
	cmd.Flags().StringVar(&opts.admin.Email, "admin-email", "", "email of the admin user")
	return cmd
}

func loadCatalog(path string) (*seed.Catalog, error) {
	if path == "" {
		return seed.DefaultCatalog()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return seed.ParseCatalog(data)
}

func runSeed(cmd *cobra.Command, rootOpts *RootOptions, opts *seedOptions) error {
	if opts.admin.Username != "" && opts.admin.Password == "" {
		opts.admin.Password = os.Getenv(adminPasswordEnv)
		if opts.admin.Password == "" {
			return errors.New("--admin-username needs --admin-password or " + adminPasswordEnv)
		}
	}

	catalog, err := loadCatalog(opts.catalogFile)
	if err != nil {
		return err
	}

	cfg, err := rootOpts.loadConfig()
	if err != nil {
		return err
	}
	logger := rootOpts.logger()

	ctx := cmd.Context()
	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	container := services.NewContainer(pgsql.NewRepositoryProvider(pool), cfg, nil)
	report, err := seed.NewSeeder(container.Vigency, container.Labor, container.User, logger).
		Run(ctx, catalog, opts.admin)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "variables: %d opened, %d already set\n", report.VariablesOpened, report.VariablesKept)
	fmt.Fprintf(out, "labors:    %d created, %d already present, %d prices opened\n",
		report.LaborsCreated, report.LaborsKept, report.PricesOpened)
	if opts.admin.Username != "" {
		fmt.Fprintf(out, "admin:     created=%t\n", report.AdminCreated)
	}
	return nil
}
