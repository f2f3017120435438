package application

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/Kilat-Pet-Delivery/service-quote/internal/domain"
	quoteDomain "github.com/Kilat-Pet-Delivery/service-quote/internal/domain/quote"
	warehouseDomain "github.com/Kilat-Pet-Delivery/service-quote/internal/domain/warehouse"
)

type fakeDirections struct {
	route *quoteDomain.RouteSummary
	err   error

	calls       int
	origin      quoteDomain.Coordinate
	destination quoteDomain.Coordinate
}

func (f *fakeDirections) Route(_ context.Context, origin, destination quoteDomain.Coordinate) (*quoteDomain.RouteSummary, error) {
	f.calls++
	f.origin = origin
	f.destination = destination
	if f.err != nil {
		return nil, f.err
	}
	r := *f.route
	return &r, nil
}

type fakeWarehouseRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]*warehouseDomain.Warehouse
}

func newFakeWarehouseRepo(whs ...*warehouseDomain.Warehouse) *fakeWarehouseRepo {
	r := &fakeWarehouseRepo{items: map[uuid.UUID]*warehouseDomain.Warehouse{}}
	for _, wh := range whs {
		r.items[wh.ID()] = wh
	}
	return r
}

func (r *fakeWarehouseRepo) FindByID(_ context.Context, id uuid.UUID) (*warehouseDomain.Warehouse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	wh, ok := r.items[id]
	if !ok {
		return nil, domain.NewNotFoundError("Warehouse", id.String())
	}
	return wh, nil
}

func (r *fakeWarehouseRepo) List(_ context.Context, page, limit int) ([]*warehouseDomain.Warehouse, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := make([]*warehouseDomain.Warehouse, 0, len(r.items))
	for _, wh := range r.items {
		all = append(all, wh)
	}
	start := (page - 1) * limit
	if start > len(all) {
		start = len(all)
	}
	end := start + limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], int64(len(all)), nil
}

func (r *fakeWarehouseRepo) Save(_ context.Context, wh *warehouseDomain.Warehouse) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[wh.ID()] = wh
	return nil
}

type fakePublisher struct {
	published []*quoteDomain.Quote
}

func (p *fakePublisher) PublishQuoteCalculated(_ context.Context, q *quoteDomain.Quote, _, _ quoteDomain.NamedLocation) {
	p.published = append(p.published, q)
}

type fakeSearcher struct {
	candidates []quoteDomain.Candidate
	location   *quoteDomain.NamedLocation
	err        error
	calls      int
}

func (f *fakeSearcher) Search(_ context.Context, _ string) ([]quoteDomain.Candidate, error) {
	f.calls++
	return f.candidates, f.err
}

func (f *fakeSearcher) Resolve(_ context.Context, _ string) (*quoteDomain.NamedLocation, error) {
	f.calls++
	return f.location, f.err
}
