package repository

import (
	"context"

	"comercio/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RemissionRepository interface {
	Create(ctx context.Context, rem *model.Remission) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Remission, error)
	// FindByIDForUpdate loads the remission inside tx holding a row lock,
	// serializing concurrent close attempts on the same remission.
	FindByIDForUpdate(tx *gorm.DB, id uuid.UUID) (*model.Remission, error)
	List(ctx context.Context) ([]model.Remission, error)
	Update(ctx context.Context, rem *model.Remission) error
	UpdateStatusTx(tx *gorm.DB, id uuid.UUID, status string) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByOrder(ctx context.Context, orderID uuid.UUID) (int64, error)
	DB() *gorm.DB // exposes the DB for transaction creation in service layer
}

type remissionRepo struct{ db *gorm.DB }

func NewRemissionRepository(db *gorm.DB) RemissionRepository { return &remissionRepo{db: db} }

func (r *remissionRepo) DB() *gorm.DB { return r.db }

func (r *remissionRepo) Create(ctx context.Context, rem *model.Remission) error {
	return r.db.WithContext(ctx).Create(rem).Error
}

func (r *remissionRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Remission, error) {
	var rem model.Remission
	err := r.db.WithContext(ctx).First(&rem, id).Error
	return &rem, err
}

func (r *remissionRepo) FindByIDForUpdate(tx *gorm.DB, id uuid.UUID) (*model.Remission, error) {
	var rem model.Remission
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&rem, id).Error
	return &rem, err
}

func (r *remissionRepo) List(ctx context.Context) ([]model.Remission, error) {
	var remissions []model.Remission
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&remissions).Error
	return remissions, err
}

func (r *remissionRepo) Update(ctx context.Context, rem *model.Remission) error {
	return r.db.WithContext(ctx).Save(rem).Error
}

func (r *remissionRepo) UpdateStatusTx(tx *gorm.DB, id uuid.UUID, status string) error {
	return tx.Model(&model.Remission{}).Where("id = ?", id).Update("status", status).Error
}

func (r *remissionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Remission{}, id).Error
}

func (r *remissionRepo) CountByOrder(ctx context.Context, orderID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Remission{}).
		Where("order_id = ?", orderID).Count(&count).Error
	return count, err
}
