package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/direcional-api/internal/application/dto"
	"github.com/jhoicas/direcional-api/internal/domain"
	"github.com/jhoicas/direcional-api/internal/domain/entity"
	"github.com/jhoicas/direcional-api/internal/domain/repository"
)

// ReservationUseCase ciclo de vida de reservas: AVAILABLE -> RESERVED y vuelta.
type ReservationUseCase struct {
	tx           TxRunner
	reservations repository.ReservationRepository
	observer     TransitionObserver
}

// NewReservationUseCase construye el caso de uso de reservas. observer puede ser nil.
func NewReservationUseCase(tx TxRunner, reservations repository.ReservationRepository, observer TransitionObserver) *ReservationUseCase {
	return &ReservationUseCase{tx: tx, reservations: reservations, observer: observerOrNop(observer)}
}

// Create reserva una unidad para un cliente. Precondiciones en orden (gana el primer fallo):
// cliente existe, unidad existe, unidad AVAILABLE, sin reserva activa para la unidad.
func (uc *ReservationUseCase) Create(ctx context.Context, in dto.CreateReservationRequest) (*dto.ReservationResponse, error) {
	var (
		created *entity.Reservation
		tr      *transition
	)
	err := uc.tx.Run(ctx, func(r Repos) error {
		client, err := r.Clients.FindByID(ctx, in.ClientID)
		if err != nil {
			return err
		}
		if client == nil {
			return domain.NotFound(domain.EntityClient)
		}
		unit, err := r.Units.FindByIDForUpdate(ctx, in.UnitID)
		if err != nil {
			return err
		}
		if unit == nil {
			return domain.NotFound(domain.EntityUnit)
		}
		if !unit.IsAvailable() {
			return domain.Conflict(domain.EntityUnit, domain.MsgUnitNotAvailable)
		}
		active, err := r.Reservations.FindActiveByUnitID(ctx, unit.ID)
		if err != nil {
			return err
		}
		if active != nil {
			return domain.Conflict(domain.EntityUnit, domain.MsgUnitActiveReservation)
		}

		now := time.Now().UTC()
		res := &entity.Reservation{
			ID:         uuid.New().String(),
			ClientID:   client.ID,
			UnitID:     unit.ID,
			ReservedAt: now,
			ExpiresAt:  in.ExpiresAt.UTC(),
			Active:     true,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := r.Reservations.Create(ctx, res); err != nil {
			return err
		}
		if err := r.Units.UpdateStatus(ctx, unit.ID, entity.UnitStatusReserved); err != nil {
			return err
		}
		created = res
		tr = &transition{op: OpCreateReservation, from: unit.Status, to: entity.UnitStatusReserved}
		return nil
	})
	if err != nil {
		return nil, err
	}
	notify(uc.observer, tr)
	return toReservationResponse(created), nil
}

// Cancel desactiva la reserva y libera la unidad si sigue RESERVED. Cancelar una reserva inactiva no hace nada.
func (uc *ReservationUseCase) Cancel(ctx context.Context, id string) (*dto.ReservationResponse, error) {
	var (
		result *entity.Reservation
		tr     *transition
	)
	err := uc.tx.Run(ctx, func(r Repos) error {
		res, err := lockReservation(ctx, r, id)
		if err != nil {
			return err
		}
		result = res
		if !res.Active {
			return nil
		}
		if err := r.Reservations.UpdateActive(ctx, res.ID, false); err != nil {
			return err
		}
		res.Active = false
		res.UpdatedAt = time.Now().UTC()
		tr, err = releaseUnit(ctx, r, res.UnitID, OpCancelReservation)
		return err
	})
	if err != nil {
		return nil, err
	}
	notify(uc.observer, tr)
	return toReservationResponse(result), nil
}

// Delete elimina la reserva; si estaba activa y la unidad sigue RESERVED, la unidad vuelve a AVAILABLE.
func (uc *ReservationUseCase) Delete(ctx context.Context, id string) error {
	var tr *transition
	err := uc.tx.Run(ctx, func(r Repos) error {
		res, err := lockReservation(ctx, r, id)
		if err != nil {
			return err
		}
		deleted, err := r.Reservations.Delete(ctx, res.ID)
		if err != nil {
			return err
		}
		if !deleted {
			return domain.NotFound(domain.EntityReservation)
		}
		if res.Active {
			tr, err = releaseUnit(ctx, r, res.UnitID, OpDeleteReservation)
		}
		return err
	})
	if err != nil {
		return err
	}
	notify(uc.observer, tr)
	return nil
}

// Get obtiene una reserva por ID.
func (uc *ReservationUseCase) Get(ctx context.Context, id string) (*dto.ReservationResponse, error) {
	res, err := uc.reservations.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, domain.NotFound(domain.EntityReservation)
	}
	return toReservationResponse(res), nil
}

// List lista reservas con paginación.
func (uc *ReservationUseCase) List(ctx context.Context, offset, limit int) ([]*dto.ReservationResponse, error) {
	offset, limit = normalizePage(offset, limit)
	list, err := uc.reservations.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return toReservationList(list), nil
}

// ListByClient lista las reservas de un cliente.
func (uc *ReservationUseCase) ListByClient(ctx context.Context, clientID string, offset, limit int) ([]*dto.ReservationResponse, error) {
	offset, limit = normalizePage(offset, limit)
	list, err := uc.reservations.ListByClientID(ctx, clientID, offset, limit)
	if err != nil {
		return nil, err
	}
	return toReservationList(list), nil
}

// lockReservation bloquea la unidad de la reserva y relee la reserva ya con el lock tomado.
func lockReservation(ctx context.Context, r Repos, id string) (*entity.Reservation, error) {
	res, err := r.Reservations.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, domain.NotFound(domain.EntityReservation)
	}
	if _, err := r.Units.FindByIDForUpdate(ctx, res.UnitID); err != nil {
		return nil, err
	}
	res, err = r.Reservations.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, domain.NotFound(domain.EntityReservation)
	}
	return res, nil
}

// releaseUnit devuelve la unidad a AVAILABLE solo si está RESERVED. Una unidad SOLD no se toca.
func releaseUnit(ctx context.Context, r Repos, unitID, op string) (*transition, error) {
	unit, err := r.Units.FindByIDForUpdate(ctx, unitID)
	if err != nil {
		return nil, err
	}
	if unit == nil || unit.Status != entity.UnitStatusReserved {
		return nil, nil
	}
	if err := r.Units.UpdateStatus(ctx, unitID, entity.UnitStatusAvailable); err != nil {
		return nil, err
	}
	return &transition{op: op, from: unit.Status, to: entity.UnitStatusAvailable}, nil
}
