package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/direcional-api/internal/domain"
	"github.com/jhoicas/direcional-api/internal/domain/entity"
	"github.com/jhoicas/direcional-api/internal/domain/repository"
)

var _ repository.ReservationRepository = (*ReservationRepo)(nil)

const reservationColumns = `id, client_id, unit_id, reserved_at, expires_at, active, created_at, updated_at`

// ReservationRepo implementación de ReservationRepository (usable con pool o tx).
type ReservationRepo struct {
	q Querier
}

// NewReservationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReservationRepository(q Querier) *ReservationRepo {
	return &ReservationRepo{q: q}
}

func scanReservation(row rowScanner) (*entity.Reservation, error) {
	var res entity.Reservation
	err := row.Scan(&res.ID, &res.ClientID, &res.UnitID, &res.ReservedAt, &res.ExpiresAt, &res.Active, &res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// Create persiste una reserva. El índice parcial ux_reservations_active_unit respalda "una activa por unidad".
func (r *ReservationRepo) Create(ctx context.Context, res *entity.Reservation) error {
	query := `
		INSERT INTO reservations (` + reservationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		res.ID, res.ClientID, res.UnitID, res.ReservedAt, res.ExpiresAt, res.Active, res.CreatedAt, res.UpdatedAt,
	)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return domain.Conflict(domain.EntityUnit, domain.MsgUnitActiveReservation)
		case isForeignKeyViolation(err):
			return domain.Conflict(domain.EntityReservation, "client or unit no longer exists")
		}
		return fmt.Errorf("insert reservation: %w", err)
	}
	return nil
}

// FindByID obtiene una reserva por ID.
func (r *ReservationRepo) FindByID(ctx context.Context, id string) (*entity.Reservation, error) {
	return r.findOne(ctx, `SELECT `+reservationColumns+` FROM reservations WHERE id = $1`, id)
}

// FindActiveByUnitID obtiene la reserva activa de la unidad, si existe.
func (r *ReservationRepo) FindActiveByUnitID(ctx context.Context, unitID string) (*entity.Reservation, error) {
	return r.findOne(ctx, `SELECT `+reservationColumns+` FROM reservations WHERE unit_id = $1 AND active`, unitID)
}

// ExistsByUnitID indica si la unidad tiene alguna reserva, activa o no.
func (r *ReservationRepo) ExistsByUnitID(ctx context.Context, unitID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM reservations WHERE unit_id = $1)`, unitID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists reservation by unit: %w", err)
	}
	return exists, nil
}

func (r *ReservationRepo) findOne(ctx context.Context, query string, arg any) (*entity.Reservation, error) {
	res, err := scanReservation(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get reservation: %w", err)
	}
	return res, nil
}

// List lista reservas con paginación.
func (r *ReservationRepo) List(ctx context.Context, offset, limit int) ([]*entity.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations ORDER BY created_at, id LIMIT $1 OFFSET $2`
	return r.list(ctx, query, limit, offset)
}

// ListByClientID lista las reservas de un cliente.
func (r *ReservationRepo) ListByClientID(ctx context.Context, clientID string, offset, limit int) ([]*entity.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE client_id = $1 ORDER BY created_at, id LIMIT $2 OFFSET $3`
	return r.list(ctx, query, clientID, limit, offset)
}

func (r *ReservationRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Reservation, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Reservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		list = append(list, res)
	}
	return list, rows.Err()
}

// UpdateActive cambia el flag active.
func (r *ReservationRepo) UpdateActive(ctx context.Context, id string, active bool) error {
	_, err := r.q.Exec(ctx, `UPDATE reservations SET active = $2, updated_at = now() WHERE id = $1`, id, active)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Conflict(domain.EntityUnit, domain.MsgUnitActiveReservation)
		}
		return fmt.Errorf("update reservation active: %w", err)
	}
	return nil
}

// Delete elimina una reserva por ID.
func (r *ReservationRepo) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete reservation: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
