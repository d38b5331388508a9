package repository

import (
	"context"
	"time"

	"comercio/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SaleRepository interface {
	Create(ctx context.Context, s *model.Sale) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Sale, error)
	List(ctx context.Context) ([]model.Sale, error)
	Update(ctx context.Context, s *model.Sale) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByRemission(ctx context.Context, remissionID uuid.UUID) (int64, error)
	// ListByRemissionTx reads all sales of a remission inside tx so the
	// ledger observes the same snapshot as the closing transaction.
	ListByRemissionTx(tx *gorm.DB, remissionID uuid.UUID) ([]model.Sale, error)
	// ListByCreatedRange returns sales whose creation timestamp falls in
	// [from, to], both ends inclusive. Feeds the daily sales report.
	ListByCreatedRange(ctx context.Context, from, to time.Time) ([]model.Sale, error)
}

type saleRepo struct{ db *gorm.DB }

func NewSaleRepository(db *gorm.DB) SaleRepository { return &saleRepo{db: db} }

func (r *saleRepo) Create(ctx context.Context, s *model.Sale) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *saleRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Sale, error) {
	var s model.Sale
	err := r.db.WithContext(ctx).First(&s, id).Error
	return &s, err
}

func (r *saleRepo) List(ctx context.Context) ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&sales).Error
	return sales, err
}

func (r *saleRepo) Update(ctx context.Context, s *model.Sale) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *saleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Sale{}, id).Error
}

func (r *saleRepo) CountByRemission(ctx context.Context, remissionID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Sale{}).
		Where("remission_id = ?", remissionID).Count(&count).Error
	return count, err
}

func (r *saleRepo) ListByRemissionTx(tx *gorm.DB, remissionID uuid.UUID) ([]model.Sale, error) {
	var sales []model.Sale
	err := tx.Where("remission_id = ?", remissionID).Find(&sales).Error
	return sales, err
}

func (r *saleRepo) ListByCreatedRange(ctx context.Context, from, to time.Time) ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.WithContext(ctx).
		Where("created_at >= ? AND created_at <= ?", from, to).
		Order("created_at ASC").
		Find(&sales).Error
	return sales, err
}
