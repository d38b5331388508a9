package tests

import (
	"context"
	"sort"
	"time"

	"comercio/internal/model"
	"comercio/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory repositories shared by the unit tests. They mimic the GORM
// implementations closely enough for the service layer: missing rows
// surface as gorm.ErrRecordNotFound, and DB() returns nil so services
// run their transactional sections without a real transaction.

// ── Customers ─────────────────────────────────────────────────────────────────

type memCustomerRepo struct {
	customers map[uuid.UUID]*model.Customer
}

func newMemCustomerRepo() *memCustomerRepo {
	return &memCustomerRepo{customers: make(map[uuid.UUID]*model.Customer)}
}

func (r *memCustomerRepo) Create(_ context.Context, c *model.Customer) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	c.CreatedAt = time.Now()
	r.customers[c.ID] = c
	return nil
}

func (r *memCustomerRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *memCustomerRepo) List(_ context.Context) ([]model.Customer, error) {
	all := make([]model.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		all = append(all, *c)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.Before(all[j].CreatedAt) })
	return all, nil
}

func (r *memCustomerRepo) Update(_ context.Context, c *model.Customer) error {
	r.customers[c.ID] = c
	return nil
}

func (r *memCustomerRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.customers, id)
	return nil
}

var _ repository.CustomerRepository = (*memCustomerRepo)(nil)

// ── Orders ────────────────────────────────────────────────────────────────────

type memOrderRepo struct {
	orders map[uuid.UUID]*model.Order
}

func newMemOrderRepo() *memOrderRepo {
	return &memOrderRepo{orders: make(map[uuid.UUID]*model.Order)}
}

func (r *memOrderRepo) Create(_ context.Context, o *model.Order) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	o.CreatedAt = time.Now()
	r.orders[o.ID] = o
	return nil
}

func (r *memOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return o, nil
}

func (r *memOrderRepo) List(_ context.Context) ([]model.Order, error) {
	all := make([]model.Order, 0, len(r.orders))
	for _, o := range r.orders {
		all = append(all, *o)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.Before(all[j].CreatedAt) })
	return all, nil
}

func (r *memOrderRepo) Update(_ context.Context, o *model.Order) error {
	r.orders[o.ID] = o
	return nil
}

func (r *memOrderRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.orders, id)
	return nil
}

func (r *memOrderRepo) CountByCustomer(_ context.Context, customerID uuid.UUID) (int64, error) {
	var count int64
	for _, o := range r.orders {
		if o.CustomerID == customerID {
			count++
		}
	}
	return count, nil
}

var _ repository.OrderRepository = (*memOrderRepo)(nil)

// ── Remissions ────────────────────────────────────────────────────────────────

type memRemissionRepo struct {
	remissions map[uuid.UUID]*model.Remission
}

func newMemRemissionRepo() *memRemissionRepo {
	return &memRemissionRepo{remissions: make(map[uuid.UUID]*model.Remission)}
}

func (r *memRemissionRepo) DB() *gorm.DB { return nil }

func (r *memRemissionRepo) Create(_ context.Context, rem *model.Remission) error {
	if rem.ID == uuid.Nil {
		rem.ID = uuid.New()
	}
	rem.CreatedAt = time.Now()
	r.remissions[rem.ID] = rem
	return nil
}

func (r *memRemissionRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Remission, error) {
	rem, ok := r.remissions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return rem, nil
}

func (r *memRemissionRepo) FindByIDForUpdate(_ *gorm.DB, id uuid.UUID) (*model.Remission, error) {
	rem, ok := r.remissions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return rem, nil
}

func (r *memRemissionRepo) List(_ context.Context) ([]model.Remission, error) {
	all := make([]model.Remission, 0, len(r.remissions))
	for _, rem := range r.remissions {
		all = append(all, *rem)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.Before(all[j].CreatedAt) })
	return all, nil
}

func (r *memRemissionRepo) Update(_ context.Context, rem *model.Remission) error {
	r.remissions[rem.ID] = rem
	return nil
}

func (r *memRemissionRepo) UpdateStatusTx(_ *gorm.DB, id uuid.UUID, status string) error {
	rem, ok := r.remissions[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	rem.Status = status
	return nil
}

func (r *memRemissionRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.remissions, id)
	return nil
}

func (r *memRemissionRepo) CountByOrder(_ context.Context, orderID uuid.UUID) (int64, error) {
	var count int64
	for _, rem := range r.remissions {
		if rem.OrderID == orderID {
			count++
		}
	}
	return count, nil
}

var _ repository.RemissionRepository = (*memRemissionRepo)(nil)

// ── Sales ─────────────────────────────────────────────────────────────────────

type memSaleRepo struct {
	sales map[uuid.UUID]*model.Sale
}

func newMemSaleRepo() *memSaleRepo {
	return &memSaleRepo{sales: make(map[uuid.UUID]*model.Sale)}
}

func (r *memSaleRepo) Create(_ context.Context, s *model.Sale) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now()
	}
	r.sales[s.ID] = s
	return nil
}

func (r *memSaleRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Sale, error) {
	s, ok := r.sales[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (r *memSaleRepo) List(_ context.Context) ([]model.Sale, error) {
	all := make([]model.Sale, 0, len(r.sales))
	for _, s := range r.sales {
		all = append(all, *s)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.Before(all[j].CreatedAt) })
	return all, nil
}

func (r *memSaleRepo) Update(_ context.Context, s *model.Sale) error {
	r.sales[s.ID] = s
	return nil
}

func (r *memSaleRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.sales, id)
	return nil
}

func (r *memSaleRepo) CountByRemission(_ context.Context, remissionID uuid.UUID) (int64, error) {
	var count int64
	for _, s := range r.sales {
		if s.RemissionID == remissionID {
			count++
		}
	}
	return count, nil
}

func (r *memSaleRepo) ListByRemissionTx(_ *gorm.DB, remissionID uuid.UUID) ([]model.Sale, error) {
	var result []model.Sale
	for _, s := range r.sales {
		if s.RemissionID == remissionID {
			result = append(result, *s)
		}
	}
	return result, nil
}

func (r *memSaleRepo) ListByCreatedRange(_ context.Context, from, to time.Time) ([]model.Sale, error) {
	var result []model.Sale
	for _, s := range r.sales {
		if !s.CreatedAt.Before(from) && !s.CreatedAt.After(to) {
			result = append(result, *s)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.Before(result[j].CreatedAt) })
	return result, nil
}

var _ repository.SaleRepository = (*memSaleRepo)(nil)

// ── Credits ───────────────────────────────────────────────────────────────────

type memCreditRepo struct {
	credits map[uuid.UUID]*model.CreditAssignment
}

func newMemCreditRepo() *memCreditRepo {
	return &memCreditRepo{credits: make(map[uuid.UUID]*model.CreditAssignment)}
}

func (r *memCreditRepo) Create(_ context.Context, c *model.CreditAssignment) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	c.CreatedAt = time.Now()
	r.credits[c.ID] = c
	return nil
}

func (r *memCreditRepo) FindByID(_ context.Context, id uuid.UUID) (*model.CreditAssignment, error) {
	c, ok := r.credits[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *memCreditRepo) List(_ context.Context) ([]model.CreditAssignment, error) {
	all := make([]model.CreditAssignment, 0, len(r.credits))
	for _, c := range r.credits {
		all = append(all, *c)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.Before(all[j].CreatedAt) })
	return all, nil
}

func (r *memCreditRepo) Update(_ context.Context, c *model.CreditAssignment) error {
	r.credits[c.ID] = c
	return nil
}

func (r *memCreditRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.credits, id)
	return nil
}

func (r *memCreditRepo) CountByRemission(_ context.Context, remissionID uuid.UUID) (int64, error) {
	var count int64
	for _, c := range r.credits {
		if c.RemissionID == remissionID {
			count++
		}
	}
	return count, nil
}

func (r *memCreditRepo) ListByRemissionTx(_ *gorm.DB, remissionID uuid.UUID) ([]model.CreditAssignment, error) {
	var result []model.CreditAssignment
	for _, c := range r.credits {
		if c.RemissionID == remissionID {
			result = append(result, *c)
		}
	}
	return result, nil
}

var _ repository.CreditRepository = (*memCreditRepo)(nil)
