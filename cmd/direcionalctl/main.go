// direcionalctl administra la base de datos de direcional-api: migraciones, datos
// iniciales del catálogo y credenciales.
//
// Uso:
//
//	direcionalctl migrate up
//	direcionalctl seed units --blocks A,B --floors 10 --per-floor 4
//	direcionalctl user create --username admin --email admin@direcional.com.br
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/jhoicas/direcional-api/internal/infrastructure/postgres"
	"github.com/jhoicas/direcional-api/pkg/config"
	"github.com/jhoicas/direcional-api/pkg/logger"
)

// env estado compartido por los subcomandos, resuelto en PersistentPreRunE.
type env struct {
	cfg *config.Config
	log *logger.Logger
}

func (e *env) pool(ctx context.Context) (*pgxpool.Pool, error) {
	pool, err := postgres.NewPool(ctx, e.cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	return pool, nil
}

func newRootCmd() *cobra.Command {
	e := &env{}
	root := &cobra.Command{
		Use:           "direcionalctl",
		Short:         "CLI admin para direcional-api",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			e.cfg = cfg
			e.log = logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel}).Component("ctl")
			return nil
		},
	}
	root.AddCommand(migrateCmd(e), seedCmd(e), userCmd(e))
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
