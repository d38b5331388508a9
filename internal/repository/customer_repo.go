package repository

import (
	"context"

	"comercio/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CustomerRepository interface {
	Create(ctx context.Context, c *model.Customer) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Customer, error)
	List(ctx context.Context) ([]model.Customer, error)
	Update(ctx context.Context, c *model.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type customerRepo struct{ db *gorm.DB }

func NewCustomerRepository(db *gorm.DB) CustomerRepository { return &customerRepo{db: db} }

func (r *customerRepo) Create(ctx context.Context, c *model.Customer) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *customerRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Customer, error) {
	var c model.Customer
	err := r.db.WithContext(ctx).First(&c, id).Error
	return &c, err
}

func (r *customerRepo) List(ctx context.Context) ([]model.Customer, error) {
	var customers []model.Customer
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&customers).Error
	return customers, err
}

func (r *customerRepo) Update(ctx context.Context, c *model.Customer) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *customerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Customer{}, id).Error
}
