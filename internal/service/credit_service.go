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

type CreditService interface {
	Create(ctx context.Context, req dto.CreateCreditRequest) (*dto.CreditResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.CreditResponse, error)
	List(ctx context.Context) ([]dto.CreditResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateCreditRequest) (*dto.CreditResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type creditService struct {
	repo          repository.CreditRepository
	remissionRepo repository.RemissionRepository
}

func NewCreditService(repo repository.CreditRepository, remissionRepo repository.RemissionRepository) CreditService {
	return &creditService{repo: repo, remissionRepo: remissionRepo}
}

func mapCredit(c *model.CreditAssignment) *dto.CreditResponse {
	return &dto.CreditResponse{
		ID:          c.ID.String(),
		RemissionID: c.RemissionID.String(),
		Amount:      c.Amount,
		Reason:      c.Reason,
		CreatedAt:   c.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func (s *creditService) Create(ctx context.Context, req dto.CreateCreditRequest) (*dto.CreditResponse, error) {
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

	credit := &model.CreditAssignment{
		RemissionID: remissionID,
		Amount:      req.Amount,
		Reason:      req.Reason,
	}
	if err := s.repo.Create(ctx, credit); err != nil {
		return nil, err
	}
	return mapCredit(credit), nil
}

func (s *creditService) Get(ctx context.Context, id uuid.UUID) (*dto.CreditResponse, error) {
	credit, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCreditNotFound
		}
		return nil, err
	}
	return mapCredit(credit), nil
}

func (s *creditService) List(ctx context.Context) ([]dto.CreditResponse, error) {
	credits, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.CreditResponse, 0, len(credits))
	for i := range credits {
		result = append(result, *mapCredit(&credits[i]))
	}
	return result, nil
}

func (s *creditService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateCreditRequest) (*dto.CreditResponse, error) {
	credit, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCreditNotFound
		}
		return nil, err
	}

	if req.Amount != nil {
		credit.Amount = *req.Amount
	}
	if req.Reason != nil {
		credit.Reason = *req.Reason
	}

	if err := s.repo.Update(ctx, credit); err != nil {
		return nil, err
	}
	return mapCredit(credit), nil
}

func (s *creditService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCreditNotFound
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}
