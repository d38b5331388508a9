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

type OrderService interface {
	Create(ctx context.Context, req dto.CreateOrderRequest) (*dto.OrderResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.OrderResponse, error)
	List(ctx context.Context) ([]dto.OrderResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateOrderRequest) (*dto.OrderResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type orderService struct {
	repo          repository.OrderRepository
	customerRepo  repository.CustomerRepository
	remissionRepo repository.RemissionRepository
}

func NewOrderService(
	repo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	remissionRepo repository.RemissionRepository,
) OrderService {
	return &orderService{repo: repo, customerRepo: customerRepo, remissionRepo: remissionRepo}
}

func mapOrder(o *model.Order) *dto.OrderResponse {
	return &dto.OrderResponse{
		ID:         o.ID.String(),
		CustomerID: o.CustomerID.String(),
		Folio:      o.Folio,
		CreatedAt:  o.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func (s *orderService) Create(ctx context.Context, req dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return nil, ErrCustomerNotFound
	}
	if _, err := s.customerRepo.FindByID(ctx, customerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}

	o := &model.Order{
		CustomerID: customerID,
		Folio:      req.Folio,
	}
	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}
	return mapOrder(o), nil
}

func (s *orderService) Get(ctx context.Context, id uuid.UUID) (*dto.OrderResponse, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return mapOrder(o), nil
}

func (s *orderService) List(ctx context.Context) ([]dto.OrderResponse, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		result = append(result, *mapOrder(&orders[i]))
	}
	return result, nil
}

func (s *orderService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	if req.CustomerID != nil {
		customerID, err := uuid.Parse(*req.CustomerID)
		if err != nil {
			return nil, ErrCustomerNotFound
		}
		if _, err := s.customerRepo.FindByID(ctx, customerID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCustomerNotFound
			}
			return nil, err
		}
		o.CustomerID = customerID
	}
	if req.Folio != nil {
		o.Folio = *req.Folio
	}

	if err := s.repo.Update(ctx, o); err != nil {
		return nil, err
	}
	return mapOrder(o), nil
}

// Delete is restrict-on-delete: an order with remissions cannot be removed.
func (s *orderService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		return err
	}

	count, err := s.remissionRepo.CountByOrder(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrOrderHasRemissions
	}
	return s.repo.Delete(ctx, id)
}
