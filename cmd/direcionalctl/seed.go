package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/jhoicas/direcional-api/internal/application/dto"
	"github.com/jhoicas/direcional-api/internal/application/usecase"
	"github.com/jhoicas/direcional-api/internal/domain"
	"github.com/jhoicas/direcional-api/internal/infrastructure/postgres"
)

type unitPlan struct {
	blocks   []string
	floors   int
	perFloor int
	rooms    int
	area     decimal.Decimal
	price    decimal.Decimal
}

// requests genera una unidad por bloque, piso y posición. El número es <bloque>-<piso><posición>
// (A-101, A-102, ..., B-1004) porque units.number es único en todo el emprendimiento.
func (p unitPlan) requests() ([]dto.CreateUnitRequest, error) {
	if p.floors <= 0 || p.perFloor <= 0 || p.perFloor > 99 {
		return nil, fmt.Errorf("floors debe ser > 0 y per-floor entre 1 y 99")
	}
	var out []dto.CreateUnitRequest
	for _, raw := range p.blocks {
		block := strings.ToUpper(strings.TrimSpace(raw))
		if block == "" {
			continue
		}
		for floor := 1; floor <= p.floors; floor++ {
			for pos := 1; pos <= p.perFloor; pos++ {
				out = append(out, dto.CreateUnitRequest{
					Number: fmt.Sprintf("%s-%d%02d", block, floor, pos),
					Block:  block,
					Floor:  floor,
					Rooms:  p.rooms,
					Area:   p.area,
					Price:  p.price,
				})
			}
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("al menos un bloque es requerido")
	}
	return out, nil
}

func seedCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Datos iniciales",
	}

	var (
		plan  unitPlan
		area  string
		price string
	)
	units := &cobra.Command{
		Use:   "units",
		Short: "Cataloga unidades AVAILABLE; las ya existentes se omiten",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if plan.area, err = decimal.NewFromString(area); err != nil {
				return fmt.Errorf("--area: %w", err)
			}
			if plan.price, err = decimal.NewFromString(price); err != nil {
				return fmt.Errorf("--price: %w", err)
			}
			reqs, err := plan.requests()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			pool, err := e.pool(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			uc := usecase.NewUnitUseCase(postgres.NewUnitRepository(pool), postgres.NewTxRunner(pool))
			created, skipped := 0, 0
			for _, in := range reqs {
				if _, err := uc.Create(ctx, in); err != nil {
					if errors.Is(err, domain.ErrConflict) {
						skipped++
						continue
					}
					return fmt.Errorf("unidad %s: %w", in.Number, err)
				}
				created++
			}
			e.log.Info().Int("created", created).Int("skipped", skipped).Msg("unidades sembradas")
			return nil
		},
	}
	units.Flags().StringSliceVar(&plan.blocks, "blocks", []string{"A"}, "bloques (A,B,...)")
	units.Flags().IntVar(&plan.floors, "floors", 4, "pisos por bloque")
	units.Flags().IntVar(&plan.perFloor, "per-floor", 4, "unidades por piso")
	units.Flags().IntVar(&plan.rooms, "rooms", 2, "dormitorios")
	units.Flags().StringVar(&area, "area", "55.00", "área en m²")
	units.Flags().StringVar(&price, "price", "250000.00", "precio")

	cmd.AddCommand(units)
	return cmd
}
