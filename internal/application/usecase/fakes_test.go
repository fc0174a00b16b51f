package usecase_test

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/direcional-api/internal/application/sales"
	"github.com/jhoicas/direcional-api/internal/domain/entity"
	"github.com/jhoicas/direcional-api/internal/domain/repository"
)

type memClientRepo struct {
	mu   sync.Mutex
	byID map[string]entity.Client
}

var _ repository.ClientRepository = (*memClientRepo)(nil)

func newMemClientRepo() *memClientRepo {
	return &memClientRepo{byID: map[string]entity.Client{}}
}

func (r *memClientRepo) Create(_ context.Context, c *entity.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[c.ID] = *c
	return nil
}

func (r *memClientRepo) FindByID(_ context.Context, id string) (*entity.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *memClientRepo) FindByNationalID(_ context.Context, nationalID string) (*entity.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.byID {
		if c.NationalID == nationalID {
			return &c, nil
		}
	}
	return nil, nil
}

func (r *memClientRepo) List(_ context.Context, offset, limit int) ([]*entity.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Client, 0, len(r.byID))
	for _, c := range r.byID {
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].NationalID < out[j].NationalID })
	return window(out, offset, limit), nil
}

func (r *memClientRepo) Update(ctx context.Context, c *entity.Client) error {
	return r.Create(ctx, c)
}

func (r *memClientRepo) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.byID[id]
	delete(r.byID, id)
	return ok, nil
}

type memUnitRepo struct {
	mu   sync.Mutex
	byID map[string]entity.Unit
}

var _ repository.UnitRepository = (*memUnitRepo)(nil)

func newMemUnitRepo() *memUnitRepo {
	return &memUnitRepo{byID: map[string]entity.Unit{}}
}

func (r *memUnitRepo) Create(_ context.Context, u *entity.Unit) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[u.ID] = *u
	return nil
}

func (r *memUnitRepo) FindByID(_ context.Context, id string) (*entity.Unit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *memUnitRepo) FindByIDForUpdate(ctx context.Context, id string) (*entity.Unit, error) {
	return r.FindByID(ctx, id)
}

func (r *memUnitRepo) FindByNumber(_ context.Context, number string) (*entity.Unit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byID {
		if u.Number == number {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *memUnitRepo) List(ctx context.Context, offset, limit int) ([]*entity.Unit, error) {
	return r.ListByStatus(ctx, "", offset, limit)
}

func (r *memUnitRepo) ListByStatus(_ context.Context, status entity.UnitStatus, offset, limit int) ([]*entity.Unit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Unit, 0, len(r.byID))
	for _, u := range r.byID {
		if status != "" && u.Status != status {
			continue
		}
		out = append(out, &u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return window(out, offset, limit), nil
}

func (r *memUnitRepo) UpdateFields(_ context.Context, u *entity.Unit) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur := r.byID[u.ID]
	cp := *u
	cp.Status = cur.Status
	r.byID[u.ID] = cp
	return nil
}

func (r *memUnitRepo) UpdateStatus(_ context.Context, id string, status entity.UnitStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u := r.byID[id]
	u.Status = status
	r.byID[id] = u
	return nil
}

func (r *memUnitRepo) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.byID[id]
	delete(r.byID, id)
	return ok, nil
}

// stubReservations / stubSales solo responden a las consultas por cliente o unidad.
type stubReservations struct {
	repository.ReservationRepository
	byClient map[string][]*entity.Reservation
	byUnit   map[string]bool
}

func (s *stubReservations) ListByClientID(_ context.Context, clientID string, offset, limit int) ([]*entity.Reservation, error) {
	return window(s.byClient[clientID], offset, limit), nil
}

func (s *stubReservations) ExistsByUnitID(_ context.Context, unitID string) (bool, error) {
	return s.byUnit[unitID], nil
}

type stubSales struct {
	repository.SaleRepository
	byClient map[string][]*entity.Sale
	byUnit   map[string]*entity.Sale
}

func (s *stubSales) ListByClientID(_ context.Context, clientID string, offset, limit int) ([]*entity.Sale, error) {
	return window(s.byClient[clientID], offset, limit), nil
}

func (s *stubSales) FindByUnitID(_ context.Context, unitID string) (*entity.Sale, error) {
	return s.byUnit[unitID], nil
}

// passTx ejecuta fn sin transacción real, serializando con un mutex.
type passTx struct {
	mu    sync.Mutex
	repos sales.Repos
}

func (p *passTx) Run(_ context.Context, fn func(sales.Repos) error) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return fn(p.repos)
}

func window[T any](list []T, offset, limit int) []T {
	if offset >= len(list) {
		return []T{}
	}
	end := offset + limit
	if end > len(list) {
		end = len(list)
	}
	return list[offset:end]
}
