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

var _ repository.UnitRepository = (*UnitRepo)(nil)

const unitColumns = `id, number, block, floor, rooms, area, price, status, created_at, updated_at`

// UnitRepo implementación de UnitRepository (usable con pool o tx).
type UnitRepo struct {
	q Querier
}

// NewUnitRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUnitRepository(q Querier) *UnitRepo {
	return &UnitRepo{q: q}
}

func scanUnit(row rowScanner) (*entity.Unit, error) {
	var (
		u      entity.Unit
		status string
	)
	err := row.Scan(&u.ID, &u.Number, &u.Block, &u.Floor, &u.Rooms, &u.Area, &u.Price, &status, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	u.Status = entity.UnitStatus(status)
	return &u, nil
}

// Create persiste una nueva unidad.
func (r *UnitRepo) Create(ctx context.Context, unit *entity.Unit) error {
	query := `
		INSERT INTO units (` + unitColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		unit.ID, unit.Number, unit.Block, unit.Floor, unit.Rooms, unit.Area, unit.Price,
		string(unit.Status), unit.CreatedAt, unit.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Conflict(domain.EntityUnit, "unit number already exists")
		}
		return fmt.Errorf("insert unit: %w", err)
	}
	return nil
}

// FindByID obtiene una unidad por ID.
func (r *UnitRepo) FindByID(ctx context.Context, id string) (*entity.Unit, error) {
	return r.findOne(ctx, `SELECT `+unitColumns+` FROM units WHERE id = $1`, id)
}

// FindByIDForUpdate obtiene la unidad y bloquea la fila (SELECT FOR UPDATE). Solo tiene efecto dentro de una tx.
func (r *UnitRepo) FindByIDForUpdate(ctx context.Context, id string) (*entity.Unit, error) {
	return r.findOne(ctx, `SELECT `+unitColumns+` FROM units WHERE id = $1 FOR UPDATE`, id)
}

// FindByNumber obtiene una unidad por número.
func (r *UnitRepo) FindByNumber(ctx context.Context, number string) (*entity.Unit, error) {
	return r.findOne(ctx, `SELECT `+unitColumns+` FROM units WHERE number = $1`, number)
}

func (r *UnitRepo) findOne(ctx context.Context, query string, arg any) (*entity.Unit, error) {
	u, err := scanUnit(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get unit: %w", err)
	}
	return u, nil
}

// List lista unidades ordenadas por número.
func (r *UnitRepo) List(ctx context.Context, offset, limit int) ([]*entity.Unit, error) {
	query := `SELECT ` + unitColumns + ` FROM units ORDER BY number LIMIT $1 OFFSET $2`
	return r.list(ctx, query, limit, offset)
}

// ListByStatus lista unidades en un estado.
func (r *UnitRepo) ListByStatus(ctx context.Context, status entity.UnitStatus, offset, limit int) ([]*entity.Unit, error) {
	query := `SELECT ` + unitColumns + ` FROM units WHERE status = $1 ORDER BY number LIMIT $2 OFFSET $3`
	return r.list(ctx, query, string(status), limit, offset)
}

func (r *UnitRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Unit, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list units: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Unit, 0)
	for rows.Next() {
		u, err := scanUnit(rows)
		if err != nil {
			return nil, fmt.Errorf("scan unit: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// UpdateFields actualiza los campos descriptivos; status no forma parte del SET.
func (r *UnitRepo) UpdateFields(ctx context.Context, unit *entity.Unit) error {
	query := `
		UPDATE units SET number = $2, block = $3, floor = $4, rooms = $5, area = $6, price = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		unit.ID, unit.Number, unit.Block, unit.Floor, unit.Rooms, unit.Area, unit.Price, unit.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Conflict(domain.EntityUnit, "unit number already exists")
		}
		return fmt.Errorf("update unit: %w", err)
	}
	return nil
}

// UpdateStatus cambia el status. Solo lo llaman los flujos de reserva y venta.
func (r *UnitRepo) UpdateStatus(ctx context.Context, id string, status entity.UnitStatus) error {
	_, err := r.q.Exec(ctx, `UPDATE units SET status = $2, updated_at = now() WHERE id = $1`, id, string(status))
	if err != nil {
		return fmt.Errorf("update unit status: %w", err)
	}
	return nil
}

// Delete elimina una unidad. Reservas o ventas que la referencian lo impiden (Conflict).
func (r *UnitRepo) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM units WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return false, domain.Conflict(domain.EntityUnit, "unit has reservations or sales")
		}
		return false, fmt.Errorf("delete unit: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
