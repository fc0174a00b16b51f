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

var _ repository.SaleRepository = (*SaleRepo)(nil)

const saleColumns = `id, client_id, unit_id, sale_value, down_payment, sold_at, created_at, updated_at`

// SaleRepo implementación de SaleRepository (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

func scanSale(row rowScanner) (*entity.Sale, error) {
	var s entity.Sale
	err := row.Scan(&s.ID, &s.ClientID, &s.UnitID, &s.SaleValue, &s.DownPayment, &s.SoldAt, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create persiste una venta. UNIQUE(unit_id) respalda "una venta por unidad".
func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	query := `
		INSERT INTO sales (` + saleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		sale.ID, sale.ClientID, sale.UnitID, sale.SaleValue, sale.DownPayment, sale.SoldAt, sale.CreatedAt, sale.UpdatedAt,
	)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return domain.Conflict(domain.EntityUnit, domain.MsgUnitAlreadySold)
		case isForeignKeyViolation(err):
			return domain.Conflict(domain.EntitySale, "client or unit no longer exists")
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// FindByID obtiene una venta por ID.
func (r *SaleRepo) FindByID(ctx context.Context, id string) (*entity.Sale, error) {
	return r.findOne(ctx, `SELECT `+saleColumns+` FROM sales WHERE id = $1`, id)
}

// FindByUnitID obtiene la venta de una unidad, si existe.
func (r *SaleRepo) FindByUnitID(ctx context.Context, unitID string) (*entity.Sale, error) {
	return r.findOne(ctx, `SELECT `+saleColumns+` FROM sales WHERE unit_id = $1`, unitID)
}

func (r *SaleRepo) findOne(ctx context.Context, query string, arg any) (*entity.Sale, error) {
	s, err := scanSale(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return s, nil
}

// List lista ventas con paginación.
func (r *SaleRepo) List(ctx context.Context, offset, limit int) ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales ORDER BY created_at, id LIMIT $1 OFFSET $2`
	return r.list(ctx, query, limit, offset)
}

// ListByClientID lista las ventas de un cliente.
func (r *SaleRepo) ListByClientID(ctx context.Context, clientID string, offset, limit int) ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE client_id = $1 ORDER BY created_at, id LIMIT $2 OFFSET $3`
	return r.list(ctx, query, clientID, limit, offset)
}

func (r *SaleRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Sale, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Sale, 0)
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// Delete elimina una venta por ID.
func (r *SaleRepo) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete sale: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
