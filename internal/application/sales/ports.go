package sales

import (
	"context"

	"github.com/jhoicas/direcional-api/internal/domain/entity"
	"github.com/jhoicas/direcional-api/internal/domain/repository"
)

// Repos repositorios atados a una misma transacción.
type Repos struct {
	Clients      repository.ClientRepository
	Units        repository.UnitRepository
	Reservations repository.ReservationRepository
	Sales        repository.SaleRepository
}

// TxRunner ejecuta fn dentro de una transacción de BD: Commit si fn devuelve nil, Rollback en otro caso.
// Units.FindByIDForUpdate dentro de fn serializa las mutaciones concurrentes sobre la misma unidad.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos Repos) error) error
}

// TransitionObserver recibe cada cambio de status confirmado (métricas).
type TransitionObserver interface {
	UnitTransition(operation string, from, to entity.UnitStatus)
}

// Operaciones del ciclo de vida reportadas al observer.
const (
	OpCreateReservation = "create_reservation"
	OpCancelReservation = "cancel_reservation"
	OpDeleteReservation = "delete_reservation"
	OpCreateSale        = "create_sale"
	OpDeleteSale        = "delete_sale"
)

type nopObserver struct{}

func (nopObserver) UnitTransition(string, entity.UnitStatus, entity.UnitStatus) {}

// transition cambio de status pendiente de notificar tras el commit.
type transition struct {
	op       string
	from, to entity.UnitStatus
}

func notify(obs TransitionObserver, tr *transition) {
	if tr != nil && tr.from != tr.to {
		obs.UnitTransition(tr.op, tr.from, tr.to)
	}
}

func observerOrNop(obs TransitionObserver) TransitionObserver {
	if obs == nil {
		return nopObserver{}
	}
	return obs
}
