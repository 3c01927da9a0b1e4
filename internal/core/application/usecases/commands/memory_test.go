package commands_test

import (
	"context"
	"maps"
	"strings"
	"sync"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/domain/model/costestimate"
	"procurement/internal/core/domain/model/identity"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/purchaseorder"
	"procurement/internal/core/ports"
	"procurement/internal/pkg/errs"
)

// memoryStore is a transactional in-memory backend for scenario tests. Aggregates are
// copied on every read and write so a rolled back unit leaves no trace.
type memoryStore struct {
	mu        sync.Mutex
	users     map[kernel.UUID]identity.User
	orders    map[kernel.UUID]purchaseorder.PurchaseOrder
	estimates map[kernel.UUID]costestimate.CostEstimate
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		users:     map[kernel.UUID]identity.User{},
		orders:    map[kernel.UUID]purchaseorder.PurchaseOrder{},
		estimates: map[kernel.UUID]costestimate.CostEstimate{},
	}
}

func (s *memoryStore) seed(users ...*identity.User) {
	for _, u := range users {
		s.users[u.ID()] = *u
	}
}

func (s *memoryStore) estimatesOf(poID kernel.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, ce := range s.estimates {
		if ce.PurchaseOrderID().IsEqual(poID) {
			n++
		}
	}
	return n
}

func (s *memoryStore) order(id kernel.UUID) (*purchaseorder.PurchaseOrder, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	po, ok := s.orders[id]
	return &po, ok
}

func (s *memoryStore) UoWFactory() commands.UoWFactory {
	return memoryFactory{s}
}

func (s *memoryStore) PurchaseOrderUoWFactory() commands.PurchaseOrderUoWFactory {
	return memoryPOFactory{s}
}

func (s *memoryStore) UserUoWFactory() commands.UserUoWFactory {
	return memoryUserFactory{s}
}

type memoryFactory struct{ store *memoryStore }

func (f memoryFactory) Create() commands.UoW { return &memoryUoW{store: f.store} }

type memoryPOFactory struct{ store *memoryStore }

func (f memoryPOFactory) Create() commands.PurchaseOrderUoW { return &memoryUoW{store: f.store} }

type memoryUserFactory struct{ store *memoryStore }

func (f memoryUserFactory) Create() commands.UserUoW { return &memoryUoW{store: f.store} }

// memoryUoW holds the store lock for the whole unit, so units are serialized.
type memoryUoW struct {
	store *memoryStore

	users     map[kernel.UUID]identity.User
	orders    map[kernel.UUID]purchaseorder.PurchaseOrder
	estimates map[kernel.UUID]costestimate.CostEstimate
	active    bool
}

func (u *memoryUoW) Begin(_ context.Context) error {
	u.store.mu.Lock()
	u.users = maps.Clone(u.store.users)
	u.orders = maps.Clone(u.store.orders)
	u.estimates = maps.Clone(u.store.estimates)
	u.active = true
	return nil
}

func (u *memoryUoW) Commit(_ context.Context) error {
	if !u.active {
		return nil
	}
	u.store.users = u.users
	u.store.orders = u.orders
	u.store.estimates = u.estimates
	u.active = false
	u.store.mu.Unlock()
	return nil
}

func (u *memoryUoW) Rollback(_ context.Context) error {
	if !u.active {
		return nil
	}
	u.active = false
	u.store.mu.Unlock()
	return nil
}

func (u *memoryUoW) UserRepository() ports.UserRepository { return memoryUsers{u} }

func (u *memoryUoW) PurchaseOrderRepository() ports.PurchaseOrderRepository { return memoryOrders{u} }

func (u *memoryUoW) CostEstimateRepository() ports.CostEstimateRepository { return memoryEstimates{u} }

type memoryUsers struct{ uow *memoryUoW }

func (r memoryUsers) Add(_ context.Context, user *identity.User) error {
	for _, existing := range r.uow.users {
		if existing.Email() == user.Email() {
			return errs.NewObjectAlreadyExistsError("email", user.Email())
		}
	}
	r.uow.users[user.ID()] = *user
	return nil
}

func (r memoryUsers) Update(_ context.Context, user *identity.User) error {
	r.uow.users[user.ID()] = *user
	return nil
}

func (r memoryUsers) Get(_ context.Context, id kernel.UUID) (*identity.User, error) {
	user, ok := r.uow.users[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("user", id.String())
	}
	return &user, nil
}

func (r memoryUsers) GetByEmail(_ context.Context, email string) (*identity.User, error) {
	for _, user := range r.uow.users {
		if user.Email() == email {
			return &user, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("email", email)
}

func (r memoryUsers) Delete(_ context.Context, id kernel.UUID) error {
	delete(r.uow.users, id)
	return nil
}

func (r memoryUsers) Count(_ context.Context) (int64, error) {
	return int64(len(r.uow.users)), nil
}

func (r memoryUsers) IsReferenced(_ context.Context, id kernel.UUID) (bool, error) {
	for _, po := range r.uow.orders {
		for _, ref := range po.References() {
			if ref.IsEqual(id) {
				return true, nil
			}
		}
	}
	for _, ce := range r.uow.estimates {
		for _, ref := range ce.References() {
			if ref.IsEqual(id) {
				return true, nil
			}
		}
	}
	return false, nil
}

type memoryOrders struct{ uow *memoryUoW }

func (r memoryOrders) Add(_ context.Context, po *purchaseorder.PurchaseOrder) error {
	for _, existing := range r.uow.orders {
		if existing.Number().IsEqual(po.Number()) {
			return errs.NewObjectAlreadyExistsError("po_number", po.Number().String())
		}
	}
	r.uow.orders[po.ID()] = *po
	return nil
}

func (r memoryOrders) Update(_ context.Context, po *purchaseorder.PurchaseOrder) error {
	r.uow.orders[po.ID()] = *po
	return nil
}

func (r memoryOrders) Get(_ context.Context, id kernel.UUID) (*purchaseorder.PurchaseOrder, error) {
	po, ok := r.uow.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("purchase order", id.String())
	}
	return &po, nil
}

func (r memoryOrders) Delete(_ context.Context, id kernel.UUID) error {
	delete(r.uow.orders, id)
	return nil
}

func (r memoryOrders) LastNumber(_ context.Context, year int) (*kernel.DocumentNumber, error) {
	var numbers []kernel.DocumentNumber
	for _, po := range r.uow.orders {
		numbers = append(numbers, po.Number())
	}
	return lastNumber(numbers, kernel.PurchaseOrderPrefix, year), nil
}

type memoryEstimates struct{ uow *memoryUoW }

func (r memoryEstimates) Add(_ context.Context, ce *costestimate.CostEstimate) error {
	for _, existing := range r.uow.estimates {
		if existing.Number().IsEqual(ce.Number()) {
			return errs.NewObjectAlreadyExistsError("ce_number", ce.Number().String())
		}
	}
	r.uow.estimates[ce.ID()] = *ce
	return nil
}

func (r memoryEstimates) Update(_ context.Context, ce *costestimate.CostEstimate) error {
	r.uow.estimates[ce.ID()] = *ce
	return nil
}

func (r memoryEstimates) Get(_ context.Context, id kernel.UUID) (*costestimate.CostEstimate, error) {
	ce, ok := r.uow.estimates[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("cost estimate", id.String())
	}
	return &ce, nil
}

func (r memoryEstimates) Delete(_ context.Context, id kernel.UUID) error {
	delete(r.uow.estimates, id)
	return nil
}

func (r memoryEstimates) DeleteByPurchaseOrder(_ context.Context, poID kernel.UUID) (int64, error) {
	var n int64
	for id, ce := range r.uow.estimates {
		if ce.PurchaseOrderID().IsEqual(poID) {
			delete(r.uow.estimates, id)
			n++
		}
	}
	return n, nil
}

func (r memoryEstimates) CountByPurchaseOrder(_ context.Context, poID kernel.UUID) (int64, error) {
	var n int64
	for _, ce := range r.uow.estimates {
		if ce.PurchaseOrderID().IsEqual(poID) {
			n++
		}
	}
	return n, nil
}

func (r memoryEstimates) LastNumber(_ context.Context, year int) (*kernel.DocumentNumber, error) {
	var numbers []kernel.DocumentNumber
	for _, ce := range r.uow.estimates {
		numbers = append(numbers, ce.Number())
	}
	return lastNumber(numbers, kernel.CostEstimatePrefix, year), nil
}

// lastNumber mirrors the repositories: the lexicographically greatest number of the
// (prefix, year) partition.
func lastNumber(numbers []kernel.DocumentNumber, prefix kernel.DocumentPrefix, year int) *kernel.DocumentNumber {
	var last *kernel.DocumentNumber
	for _, n := range numbers {
		if n.Prefix() != prefix || n.Year() != year {
			continue
		}
		if last == nil || strings.Compare(n.String(), last.String()) > 0 {
			candidate := n
			last = &candidate
		}
	}
	return last
}
