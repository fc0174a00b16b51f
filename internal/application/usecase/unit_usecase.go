package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/direcional-api/internal/application/dto"
	"github.com/jhoicas/direcional-api/internal/application/sales"
	"github.com/jhoicas/direcional-api/internal/domain"
	"github.com/jhoicas/direcional-api/internal/domain/entity"
	"github.com/jhoicas/direcional-api/internal/domain/repository"
)

const (
	msgUnitNumberExists = "unit number already exists"
	msgUnitNotDeletable = "only available units can be deleted"
	msgUnitReferenced   = "unit has reservations or sales"
	msgInvalidStatus    = "invalid unit status"
)

// UnitUseCase casos de uso CRUD para el catálogo de unidades. El status solo cambia vía reservas y ventas.
type UnitUseCase struct {
	repo repository.UnitRepository
	tx   sales.TxRunner
}

// NewUnitUseCase construye el caso de uso.
func NewUnitUseCase(repo repository.UnitRepository, tx sales.TxRunner) *UnitUseCase {
	return &UnitUseCase{repo: repo, tx: tx}
}

// Create cataloga una unidad AVAILABLE. Conflict si el número ya existe.
func (uc *UnitUseCase) Create(ctx context.Context, in dto.CreateUnitRequest) (*dto.UnitResponse, error) {
	number := strings.TrimSpace(in.Number)
	if err := uc.ensureNumberFree(ctx, number, ""); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	unit := &entity.Unit{
		ID:        uuid.New().String(),
		Number:    number,
		Block:     strings.TrimSpace(in.Block),
		Floor:     in.Floor,
		Rooms:     in.Rooms,
		Area:      in.Area,
		Price:     in.Price,
		Status:    entity.UnitStatusAvailable,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, unit); err != nil {
		return nil, err
	}
	return ToUnitResponse(unit), nil
}

// GetByID obtiene una unidad por ID.
func (uc *UnitUseCase) GetByID(ctx context.Context, id string) (*dto.UnitResponse, error) {
	unit, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToUnitResponse(unit), nil
}

// List lista unidades; status vacío lista todas.
func (uc *UnitUseCase) List(ctx context.Context, status string, page dto.PageRequest) ([]*dto.UnitResponse, error) {
	page.DefaultPage()
	var (
		list []*entity.Unit
		err  error
	)
	if status == "" {
		list, err = uc.repo.List(ctx, page.Offset, page.Limit)
	} else {
		st := entity.UnitStatus(strings.ToUpper(status))
		if !st.Valid() {
			return nil, domain.InvalidInput(msgInvalidStatus)
		}
		list, err = uc.repo.ListByStatus(ctx, st, page.Offset, page.Limit)
	}
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UnitResponse, 0, len(list))
	for _, u := range list {
		out = append(out, ToUnitResponse(u))
	}
	return out, nil
}

// Update actualiza los campos descriptivos. El status no se modifica.
func (uc *UnitUseCase) Update(ctx context.Context, id string, in dto.UpdateUnitRequest) (*dto.UnitResponse, error) {
	unit, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Number != nil {
		number := strings.TrimSpace(*in.Number)
		if number != unit.Number {
			if err := uc.ensureNumberFree(ctx, number, unit.ID); err != nil {
				return nil, err
			}
		}
		unit.Number = number
	}
	if in.Block != nil {
		unit.Block = strings.TrimSpace(*in.Block)
	}
	if in.Floor != nil {
		unit.Floor = *in.Floor
	}
	if in.Rooms != nil {
		unit.Rooms = *in.Rooms
	}
	if in.Area != nil {
		unit.Area = *in.Area
	}
	if in.Price != nil {
		unit.Price = *in.Price
	}
	unit.UpdatedAt = time.Now().UTC()
	if err := uc.repo.UpdateFields(ctx, unit); err != nil {
		return nil, err
	}
	return ToUnitResponse(unit), nil
}

// Delete elimina una unidad AVAILABLE sin historial de reservas ni ventas; bloquea la fila para no competir con una reserva o venta en curso.
func (uc *UnitUseCase) Delete(ctx context.Context, id string) error {
	return uc.tx.Run(ctx, func(r sales.Repos) error {
		unit, err := r.Units.FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if unit == nil {
			return domain.NotFound(domain.EntityUnit)
		}
		if !unit.IsAvailable() {
			return domain.Conflict(domain.EntityUnit, msgUnitNotDeletable)
		}
		sale, err := r.Sales.FindByUnitID(ctx, id)
		if err != nil {
			return err
		}
		if sale != nil {
			return domain.Conflict(domain.EntityUnit, domain.MsgUnitAlreadySold)
		}
		reserved, err := r.Reservations.ExistsByUnitID(ctx, id)
		if err != nil {
			return err
		}
		if reserved {
			return domain.Conflict(domain.EntityUnit, msgUnitReferenced)
		}
		deleted, err := r.Units.Delete(ctx, id)
		if err != nil {
			return err
		}
		if !deleted {
			return domain.NotFound(domain.EntityUnit)
		}
		return nil
	})
}

func (uc *UnitUseCase) find(ctx context.Context, id string) (*entity.Unit, error) {
	unit, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, domain.NotFound(domain.EntityUnit)
	}
	return unit, nil
}

func (uc *UnitUseCase) ensureNumberFree(ctx context.Context, number, selfID string) error {
	existing, err := uc.repo.FindByNumber(ctx, number)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != selfID {
		return domain.Conflict(domain.EntityUnit, msgUnitNumberExists)
	}
	return nil
}

// ToUnitResponse adapta la entidad a la salida HTTP.
func ToUnitResponse(u *entity.Unit) *dto.UnitResponse {
	return &dto.UnitResponse{
		ID:        u.ID,
		Number:    u.Number,
		Block:     u.Block,
		Floor:     u.Floor,
		Rooms:     u.Rooms,
		Area:      u.Area,
		Price:     u.Price,
		Status:    string(u.Status),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
