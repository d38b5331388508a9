package repository

import (
	"context"

	"comercio/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(ctx context.Context, o *model.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Order, error)
	List(ctx context.Context) ([]model.Order, error)
	Update(ctx context.Context, o *model.Order) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error)
}

type orderRepo struct{ db *gorm.DB }

func NewOrderRepository(db *gorm.DB) OrderRepository { return &orderRepo{db: db} }

func (r *orderRepo) Create(ctx context.Context, o *model.Order) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *orderRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).First(&o, id).Error
	return &o, err
}

func (r *orderRepo) List(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&orders).Error
	return orders, err
}

func (r *orderRepo) Update(ctx context.Context, o *model.Order) error {
	return r.db.WithContext(ctx).Save(o).Error
}

func (r *orderRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Order{}, id).Error
}

func (r *orderRepo) CountByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("customer_id = ?", customerID).Count(&count).Error
	return count, err
}
