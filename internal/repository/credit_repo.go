package repository

import (
	"context"

	"comercio/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreditRepository interface {
	Create(ctx context.Context, c *model.CreditAssignment) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.CreditAssignment, error)
	List(ctx context.Context) ([]model.CreditAssignment, error)
	Update(ctx context.Context, c *model.CreditAssignment) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByRemission(ctx context.Context, remissionID uuid.UUID) (int64, error)
	// ListByRemissionTx reads all credits of a remission inside tx; see
	// SaleRepository.ListByRemissionTx.
	ListByRemissionTx(tx *gorm.DB, remissionID uuid.UUID) ([]model.CreditAssignment, error)
}

type creditRepo struct{ db *gorm.DB }

func NewCreditRepository(db *gorm.DB) CreditRepository { return &creditRepo{db: db} }

func (r *creditRepo) Create(ctx context.Context, c *model.CreditAssignment) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *creditRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.CreditAssignment, error) {
	var c model.CreditAssignment
	err := r.db.WithContext(ctx).First(&c, id).Error
	return &c, err
}

func (r *creditRepo) List(ctx context.Context) ([]model.CreditAssignment, error) {
	var credits []model.CreditAssignment
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&credits).Error
	return credits, err
}

func (r *creditRepo) Update(ctx context.Context, c *model.CreditAssignment) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *creditRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.CreditAssignment{}, id).Error
}

func (r *creditRepo) CountByRemission(ctx context.Context, remissionID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.CreditAssignment{}).
		Where("remission_id = ?", remissionID).Count(&count).Error
	return count, err
}

func (r *creditRepo) ListByRemissionTx(tx *gorm.DB, remissionID uuid.UUID) ([]model.CreditAssignment, error) {
	var credits []model.CreditAssignment
	err := tx.Where("remission_id = ?", remissionID).Find(&credits).Error
	return credits, err
}
