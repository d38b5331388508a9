package service

import (
	"context"
	"errors"

	"comercio/internal/dto"
	"comercio/internal/model"
	"comercio/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CustomerService interface {
	Create(ctx context.Context, req dto.CreateCustomerRequest) (*dto.CustomerResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.CustomerResponse, error)
	List(ctx context.Context) ([]dto.CustomerResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateCustomerRequest) (*dto.CustomerResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type customerService struct {
	repo      repository.CustomerRepository
	orderRepo repository.OrderRepository
}

func NewCustomerService(repo repository.CustomerRepository, orderRepo repository.OrderRepository) CustomerService {
	return &customerService{repo: repo, orderRepo: orderRepo}
}

func mapCustomer(c *model.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:       c.ID.String(),
		Name:     c.Name,
		Email:    c.Email,
		IsActive: c.IsActive,
	}
}

func (s *customerService) Create(ctx context.Context, req dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	c := &model.Customer{
		Name:     req.Name,
		Email:    req.Email,
		IsActive: true,
	}
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return mapCustomer(c), nil
}

func (s *customerService) Get(ctx context.Context, id uuid.UUID) (*dto.CustomerResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return mapCustomer(c), nil
}

func (s *customerService) List(ctx context.Context) ([]dto.CustomerResponse, error) {
	customers, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.CustomerResponse, 0, len(customers))
	for i := range customers {
		result = append(result, *mapCustomer(&customers[i]))
	}
	return result, nil
}

func (s *customerService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Email != nil {
		c.Email = req.Email
	}
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return mapCustomer(c), nil
}

// Delete is restrict-on-delete: a customer with orders cannot be removed.
func (s *customerService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCustomerNotFound
		}
		return err
	}

	count, err := s.orderRepo.CountByCustomer(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCustomerHasOrders
	}
	return s.repo.Delete(ctx, id)
}
