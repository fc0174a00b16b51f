package sales_test

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/jhoicas/direcional-api/internal/application/sales"
	"github.com/jhoicas/direcional-api/internal/domain/entity"
)

// memStore almacén en memoria con transacciones serializadas y rollback por snapshot.
type memStore struct {
	txMu sync.Mutex // emula el lock de fila: una transacción a la vez
	mu   sync.Mutex

	clients      map[string]*entity.Client
	units        map[string]*entity.Unit
	reservations map[string]*entity.Reservation
	sales        map[string]*entity.Sale

	failUpdateStatus error
}

func newMemStore() *memStore {
	return &memStore{
		clients:      map[string]*entity.Client{},
		units:        map[string]*entity.Unit{},
		reservations: map[string]*entity.Reservation{},
		sales:        map[string]*entity.Sale{},
	}
}

func (s *memStore) repos() sales.Repos {
	return sales.Repos{
		Clients:      &memClients{s},
		Units:        &memUnits{s},
		Reservations: &memReservations{s},
		Sales:        &memSales{s},
	}
}

type snapshot struct {
	clients      map[string]entity.Client
	units        map[string]entity.Unit
	reservations map[string]entity.Reservation
	sales        map[string]entity.Sale
}

func (s *memStore) snapshot() snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := snapshot{
		clients:      map[string]entity.Client{},
		units:        map[string]entity.Unit{},
		reservations: map[string]entity.Reservation{},
		sales:        map[string]entity.Sale{},
	}
	for k, v := range s.clients {
		snap.clients[k] = *v
	}
	for k, v := range s.units {
		snap.units[k] = *v
	}
	for k, v := range s.reservations {
		snap.reservations[k] = *v
	}
	for k, v := range s.sales {
		snap.sales[k] = *v
	}
	return snap
}

func (s *memStore) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients = map[string]*entity.Client{}
	for k, v := range snap.clients {
		s.clients[k] = &v
	}
	s.units = map[string]*entity.Unit{}
	for k, v := range snap.units {
		s.units[k] = &v
	}
	s.reservations = map[string]*entity.Reservation{}
	for k, v := range snap.reservations {
		s.reservations[k] = &v
	}
	s.sales = map[string]*entity.Sale{}
	for k, v := range snap.sales {
		s.sales[k] = &v
	}
}

// Run implementa sales.TxRunner.
func (s *memStore) Run(_ context.Context, fn func(sales.Repos) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()
	snap := s.snapshot()
	if err := fn(s.repos()); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

func (s *memStore) addClient(c *entity.Client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *c
	s.clients[c.ID] = &cp
}

func (s *memStore) addUnit(u *entity.Unit) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *u
	s.units[u.ID] = &cp
}

func (s *memStore) unit(id string) entity.Unit {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.units[id]
}

func (s *memStore) reservation(id string) (entity.Reservation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.reservations[id]
	if !ok {
		return entity.Reservation{}, false
	}
	return *r, true
}

func (s *memStore) countReservations() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.reservations)
}

func (s *memStore) countSales() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sales)
}

func page[T any](list []T, offset, limit int) []T {
	if offset >= len(list) {
		return []T{}
	}
	end := offset + limit
	if end > len(list) {
		end = len(list)
	}
	return list[offset:end]
}

// ── clients ──────────────────────────────────────────────────────────────────

type memClients struct{ s *memStore }

func (r *memClients) Create(_ context.Context, c *entity.Client) error {
	r.s.addClient(c)
	return nil
}

func (r *memClients) FindByID(_ context.Context, id string) (*entity.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.clients[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *memClients) FindByNationalID(_ context.Context, nationalID string) (*entity.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.clients {
		if c.NationalID == nationalID {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memClients) List(_ context.Context, offset, limit int) ([]*entity.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Client, 0, len(r.s.clients))
	for _, c := range r.s.clients {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return page(out, offset, limit), nil
}

func (r *memClients) Update(_ context.Context, c *entity.Client) error {
	r.s.addClient(c)
	return nil
}

func (r *memClients) Delete(_ context.Context, id string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	_, ok := r.s.clients[id]
	delete(r.s.clients, id)
	return ok, nil
}

// ── units ────────────────────────────────────────────────────────────────────

type memUnits struct{ s *memStore }

func (r *memUnits) Create(_ context.Context, u *entity.Unit) error {
	r.s.addUnit(u)
	return nil
}

func (r *memUnits) FindByID(_ context.Context, id string) (*entity.Unit, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.units[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *memUnits) FindByIDForUpdate(ctx context.Context, id string) (*entity.Unit, error) {
	return r.FindByID(ctx, id)
}

func (r *memUnits) FindByNumber(_ context.Context, number string) (*entity.Unit, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.units {
		if u.Number == number {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUnits) List(ctx context.Context, offset, limit int) ([]*entity.Unit, error) {
	return r.ListByStatus(ctx, "", offset, limit)
}

func (r *memUnits) ListByStatus(_ context.Context, status entity.UnitStatus, offset, limit int) ([]*entity.Unit, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Unit, 0, len(r.s.units))
	for _, u := range r.s.units {
		if status != "" && u.Status != status {
			continue
		}
		cp := *u
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return page(out, offset, limit), nil
}

func (r *memUnits) UpdateFields(_ context.Context, u *entity.Unit) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.units[u.ID]
	if !ok {
		return nil
	}
	cp := *u
	cp.Status = cur.Status
	r.s.units[u.ID] = &cp
	return nil
}

func (r *memUnits) UpdateStatus(_ context.Context, id string, status entity.UnitStatus) error {
	if r.s.failUpdateStatus != nil {
		return r.s.failUpdateStatus
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if u, ok := r.s.units[id]; ok {
		u.Status = status
	}
	return nil
}

func (r *memUnits) Delete(_ context.Context, id string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	_, ok := r.s.units[id]
	delete(r.s.units, id)
	return ok, nil
}

// ── reservations ─────────────────────────────────────────────────────────────

type memReservations struct{ s *memStore }

func (r *memReservations) Create(_ context.Context, res *entity.Reservation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *res
	r.s.reservations[res.ID] = &cp
	return nil
}

func (r *memReservations) FindByID(_ context.Context, id string) (*entity.Reservation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	res, ok := r.s.reservations[id]
	if !ok {
		return nil, nil
	}
	cp := *res
	return &cp, nil
}

func (r *memReservations) List(ctx context.Context, offset, limit int) ([]*entity.Reservation, error) {
	return r.ListByClientID(ctx, "", offset, limit)
}

func (r *memReservations) ListByClientID(_ context.Context, clientID string, offset, limit int) ([]*entity.Reservation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Reservation, 0, len(r.s.reservations))
	for _, res := range r.s.reservations {
		if clientID != "" && res.ClientID != clientID {
			continue
		}
		cp := *res
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return page(out, offset, limit), nil
}

func (r *memReservations) FindActiveByUnitID(_ context.Context, unitID string) (*entity.Reservation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, res := range r.s.reservations {
		if res.UnitID == unitID && res.Active {
			cp := *res
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memReservations) ExistsByUnitID(_ context.Context, unitID string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, res := range r.s.reservations {
		if res.UnitID == unitID {
			return true, nil
		}
	}
	return false, nil
}

func (r *memReservations) UpdateActive(_ context.Context, id string, active bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if res, ok := r.s.reservations[id]; ok {
		res.Active = active
	}
	return nil
}

func (r *memReservations) Delete(_ context.Context, id string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	_, ok := r.s.reservations[id]
	delete(r.s.reservations, id)
	return ok, nil
}

// ── sales ────────────────────────────────────────────────────────────────────

type memSales struct{ s *memStore }

func (r *memSales) Create(_ context.Context, sale *entity.Sale) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *sale
	r.s.sales[sale.ID] = &cp
	return nil
}

func (r *memSales) FindByID(_ context.Context, id string) (*entity.Sale, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sale, ok := r.s.sales[id]
	if !ok {
		return nil, nil
	}
	cp := *sale
	return &cp, nil
}

func (r *memSales) List(ctx context.Context, offset, limit int) ([]*entity.Sale, error) {
	return r.ListByClientID(ctx, "", offset, limit)
}

func (r *memSales) ListByClientID(_ context.Context, clientID string, offset, limit int) ([]*entity.Sale, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Sale, 0, len(r.s.sales))
	for _, sale := range r.s.sales {
		if clientID != "" && sale.ClientID != clientID {
			continue
		}
		cp := *sale
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return page(out, offset, limit), nil
}

func (r *memSales) FindByUnitID(_ context.Context, unitID string) (*entity.Sale, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, sale := range r.s.sales {
		if sale.UnitID == unitID {
			cp := *sale
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memSales) Delete(_ context.Context, id string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	_, ok := r.s.sales[id]
	delete(r.s.sales, id)
	return ok, nil
}

// ── observer ─────────────────────────────────────────────────────────────────

type recordedTransition struct {
	Op       string
	From, To entity.UnitStatus
}

type recordingObserver struct {
	mu   sync.Mutex
	list []recordedTransition
}

func (o *recordingObserver) UnitTransition(op string, from, to entity.UnitStatus) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.list = append(o.list, recordedTransition{Op: op, From: from, To: to})
}

func (o *recordingObserver) all() []recordedTransition {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]recordedTransition(nil), o.list...)
}

var errDB = errors.New("conexión perdida")
