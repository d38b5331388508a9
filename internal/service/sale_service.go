package service

import (
	"context"
	"errors"
	"time"

	"comercio/internal/dto"
	"comercio/internal/model"
	"comercio/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SaleService interface {
	Create(ctx context.Context, req dto.CreateSaleRequest) (*dto.SaleResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.SaleResponse, error)
	List(ctx context.Context) ([]dto.SaleResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateSaleRequest) (*dto.SaleResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type saleService struct {
	repo          repository.SaleRepository
	remissionRepo repository.RemissionRepository
}

func NewSaleService(repo repository.SaleRepository, remissionRepo repository.RemissionRepository) SaleService {
	return &saleService{repo: repo, remissionRepo: remissionRepo}
}

func mapSale(s *model.Sale) *dto.SaleResponse {
	return &dto.SaleResponse{
		ID:          s.ID.String(),
		RemissionID: s.RemissionID.String(),
		Subtotal:    s.Subtotal,
		Tax:         s.Tax,
		CreatedAt:   s.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func (s *saleService) Create(ctx context.Context, req dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	remissionID, err := uuid.Parse(req.RemissionID)
	if err != nil {
		return nil, ErrRemissionNotFound
	}
	if _, err := s.remissionRepo.FindByID(ctx, remissionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRemissionNotFound
		}
		return nil, err
	}

	sale := &model.Sale{
		RemissionID: remissionID,
		Subtotal:    req.Subtotal,
		Tax:         req.Tax,
	}
	if err := s.repo.Create(ctx, sale); err != nil {
		return nil, err
	}
	return mapSale(sale), nil
}

func (s *saleService) Get(ctx context.Context, id uuid.UUID) (*dto.SaleResponse, error) {
	sale, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSaleNotFound
		}
		return nil, err
	}
	return mapSale(sale), nil
}

func (s *saleService) List(ctx context.Context) ([]dto.SaleResponse, error) {
	sales, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.SaleResponse, 0, len(sales))
	for i := range sales {
		result = append(result, *mapSale(&sales[i]))
	}
	return result, nil
}

func (s *saleService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateSaleRequest) (*dto.SaleResponse, error) {
	sale, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSaleNotFound
		}
		return nil, err
	}

	if req.Subtotal != nil {
		sale.Subtotal = *req.Subtotal
	}
	if req.Tax != nil {
		sale.Tax = *req.Tax
	}

	if err := s.repo.Update(ctx, sale); err != nil {
		return nil, err
	}
	return mapSale(sale), nil
}

func (s *saleService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSaleNotFound
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}
