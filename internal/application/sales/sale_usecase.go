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

// SaleUseCase ciclo de vida de ventas: AVAILABLE|RESERVED -> SOLD y vuelta al eliminar.
type SaleUseCase struct {
	tx       TxRunner
	sales    repository.SaleRepository
	observer TransitionObserver
}

// NewSaleUseCase construye el caso de uso de ventas. observer puede ser nil.
func NewSaleUseCase(tx TxRunner, sales repository.SaleRepository, observer TransitionObserver) *SaleUseCase {
	return &SaleUseCase{tx: tx, sales: sales, observer: observerOrNop(observer)}
}

// Create registra la venta. Precondiciones en orden: cliente existe, unidad existe,
// unidad AVAILABLE o RESERVED, sin venta previa para la unidad.
// Si la unidad estaba reservada, su reserva activa se desactiva en la misma transacción.
func (uc *SaleUseCase) Create(ctx context.Context, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	var (
		created *entity.Sale
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
		if !unit.CanBeSold() {
			return domain.Conflict(domain.EntityUnit, domain.MsgUnitNotAvailableForSale)
		}
		existing, err := r.Sales.FindByUnitID(ctx, unit.ID)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.Conflict(domain.EntityUnit, domain.MsgUnitAlreadySold)
		}

		now := time.Now().UTC()
		sale := &entity.Sale{
			ID:          uuid.New().String(),
			ClientID:    client.ID,
			UnitID:      unit.ID,
			SaleValue:   in.SaleValue,
			DownPayment: in.DownPayment,
			SoldAt:      now,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := r.Sales.Create(ctx, sale); err != nil {
			return err
		}
		active, err := r.Reservations.FindActiveByUnitID(ctx, unit.ID)
		if err != nil {
			return err
		}
		if active != nil {
			if err := r.Reservations.UpdateActive(ctx, active.ID, false); err != nil {
				return err
			}
		}
		if err := r.Units.UpdateStatus(ctx, unit.ID, entity.UnitStatusSold); err != nil {
			return err
		}
		created = sale
		tr = &transition{op: OpCreateSale, from: unit.Status, to: entity.UnitStatusSold}
		return nil
	})
	if err != nil {
		return nil, err
	}
	notify(uc.observer, tr)
	return toSaleResponse(created), nil
}

// Delete elimina la venta y devuelve la unidad a AVAILABLE.
func (uc *SaleUseCase) Delete(ctx context.Context, id string) error {
	var tr *transition
	err := uc.tx.Run(ctx, func(r Repos) error {
		sale, err := r.Sales.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if sale == nil {
			return domain.NotFound(domain.EntitySale)
		}
		unit, err := r.Units.FindByIDForUpdate(ctx, sale.UnitID)
		if err != nil {
			return err
		}
		deleted, err := r.Sales.Delete(ctx, sale.ID)
		if err != nil {
			return err
		}
		if !deleted {
			return domain.NotFound(domain.EntitySale)
		}
		if unit == nil {
			return nil
		}
		if err := r.Units.UpdateStatus(ctx, unit.ID, entity.UnitStatusAvailable); err != nil {
			return err
		}
		tr = &transition{op: OpDeleteSale, from: unit.Status, to: entity.UnitStatusAvailable}
		return nil
	})
	if err != nil {
		return err
	}
	notify(uc.observer, tr)
	return nil
}

// Get obtiene una venta por ID.
func (uc *SaleUseCase) Get(ctx context.Context, id string) (*dto.SaleResponse, error) {
	sale, err := uc.sales.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.NotFound(domain.EntitySale)
	}
	return toSaleResponse(sale), nil
}

// List lista ventas con paginación.
func (uc *SaleUseCase) List(ctx context.Context, offset, limit int) ([]*dto.SaleResponse, error) {
	offset, limit = normalizePage(offset, limit)
	list, err := uc.sales.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return toSaleList(list), nil
}

// ListByClient lista las ventas de un cliente.
func (uc *SaleUseCase) ListByClient(ctx context.Context, clientID string, offset, limit int) ([]*dto.SaleResponse, error) {
	offset, limit = normalizePage(offset, limit)
	list, err := uc.sales.ListByClientID(ctx, clientID, offset, limit)
	if err != nil {
		return nil, err
	}
	return toSaleList(list), nil
}
