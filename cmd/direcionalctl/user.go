package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jhoicas/direcional-api/internal/application/auth"
	"github.com/jhoicas/direcional-api/internal/application/dto"
	"github.com/jhoicas/direcional-api/internal/infrastructure/postgres"
)

func userCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Credenciales de acceso",
	}

	var in dto.RegisterRequest
	create := &cobra.Command{
		Use:   "create",
		Short: "Registra un usuario activo (password por --password o stdin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if in.Password == "" {
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("leer password de stdin: %w", err)
				}
				in.Password = strings.TrimRight(line, "\r\n")
			}
			if len(in.Password) < 8 {
				return fmt.Errorf("password debe tener al menos 8 caracteres")
			}

			ctx := cmd.Context()
			pool, err := e.pool(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			tokens := auth.NewTokenService(auth.TokenConfig{
				Secret:     e.cfg.JWT.Secret,
				DefaultTTL: e.cfg.JWT.TTL(),
				Issuer:     e.cfg.JWT.Issuer,
			})
			user, err := auth.NewAuthUseCase(postgres.NewUserRepository(pool), tokens, nil).Register(ctx, in)
			if err != nil {
				return err
			}
			e.log.Info().Str("id", user.ID).Str("username", user.Username).Msg("usuario creado")
			return nil
		},
	}
	create.Flags().StringVar(&in.Username, "username", "", "username (requerido)")
	create.Flags().StringVar(&in.Email, "email", "", "email (requerido)")
	create.Flags().StringVar(&in.Password, "password", "", "password; vacío = leer de stdin")
	_ = create.MarkFlagRequired("username")
	_ = create.MarkFlagRequired("email")

	cmd.AddCommand(create)
	return cmd
}
