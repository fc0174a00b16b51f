package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/direcional-api/internal/infrastructure/postgres"
	migrations "github.com/jhoicas/direcional-api/migrations/postgres"
)

func migrateCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migraciones del esquema",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Aplica las migraciones pendientes",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			pool, err := e.pool(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			res, err := postgres.NewMigrator(migrations.FS, migrations.Dir).Up(ctx, pool)
			if err != nil {
				return err
			}
			e.log.Info().
				Ints("applied", res.Applied).
				Ints("skipped", res.Skipped).
				Dur("duration", res.Duration).
				Msg("migraciones aplicadas")
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Lista las migraciones embebidas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := postgres.NewMigrator(migrations.FS, migrations.Dir).ParseMigrations()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-8s  %s\n", "Version", "Name")
			for _, m := range list {
				fmt.Fprintf(out, "%-8d  %s\n", m.Version, m.Name)
			}
			return nil
		},
	})
	return cmd
}
