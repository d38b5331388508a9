package service

import (
	"context"
	"errors"
	"time"

	"comercio/internal/dto"
	"comercio/internal/model"
	"comercio/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type RemissionService interface {
	Create(ctx context.Context, req dto.CreateRemissionRequest) (*dto.RemissionResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.RemissionResponse, error)
	List(ctx context.Context) ([]dto.RemissionResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateRemissionRequest) (*dto.RemissionResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// Close transitions an open remission to closed, atomically validating
	// the balance invariant against the current sales and credits.
	Close(ctx context.Context, id uuid.UUID) error
	// Summary returns the computed ledger for an open or closed remission.
	Summary(ctx context.Context, id uuid.UUID) (*dto.SummaryResponse, error)
}

type remissionService struct {
	repo       repository.RemissionRepository
	orderRepo  repository.OrderRepository
	saleRepo   repository.SaleRepository
	creditRepo repository.CreditRepository
}

func NewRemissionService(
	repo repository.RemissionRepository,
	orderRepo repository.OrderRepository,
	saleRepo repository.SaleRepository,
	creditRepo repository.CreditRepository,
) RemissionService {
	return &remissionService{
		repo:       repo,
		orderRepo:  orderRepo,
		saleRepo:   saleRepo,
		creditRepo: creditRepo,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// ── Ledger ────────────────────────────────────────────────────────────────────

// ledger holds the financial totals of one remission, always recomputed
// from the current sale and credit rows (never cached).
type ledger struct {
	totalSales   decimal.Decimal // Σ(subtotal + tax)
	totalCredits decimal.Decimal // Σ(amount)
	salesCount   int
}

func (l ledger) balance() decimal.Decimal { return l.totalSales.Sub(l.totalCredits) }

// computeLedger reads the remission's sales and credits through tx and
// sums them as exact decimals. Passing the close transaction makes the
// totals part of the same snapshot the status update commits against.
func (s *remissionService) computeLedger(tx *gorm.DB, remissionID uuid.UUID) (ledger, error) {
	led := ledger{totalSales: decimal.Zero, totalCredits: decimal.Zero}

	sales, err := s.saleRepo.ListByRemissionTx(tx, remissionID)
	if err != nil {
		return led, err
	}
	for _, sale := range sales {
		led.totalSales = led.totalSales.Add(sale.Subtotal.Add(sale.Tax))
	}
	led.salesCount = len(sales)

	credits, err := s.creditRepo.ListByRemissionTx(tx, remissionID)
	if err != nil {
		return led, err
	}
	for _, credit := range credits {
		led.totalCredits = led.totalCredits.Add(credit.Amount)
	}

	return led, nil
}

// ── Close ─────────────────────────────────────────────────────────────────────
// Validation order is part of the contract:
//   1. remission must exist
//   2. must not be closed already
//   3. must have at least one sale
//   4. credits must not exceed total sold
// Steps 2-4 plus the status write run in one transaction with the remission
// row locked FOR UPDATE, so concurrent closes serialize and the invariant is
// checked against the totals that actually commit.

func (s *remissionService) Close(ctx context.Context, id uuid.UUID) error {
	rem, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRemissionNotFound
		}
		return err
	}
	if rem.Status == model.RemissionClosed {
		return ErrAlreadyClosed
	}

	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		locked, err := s.repo.FindByIDForUpdate(tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRemissionNotFound
			}
			return err
		}
		// Re-check under the lock: a concurrent close may have won.
		if locked.Status == model.RemissionClosed {
			return ErrAlreadyClosed
		}

		led, err := s.computeLedger(tx, id)
		if err != nil {
			return err
		}
		if led.salesCount == 0 {
			return ErrNoSales
		}
		if led.totalCredits.GreaterThan(led.totalSales) {
			return ErrCreditsExceedSales
		}

		return s.repo.UpdateStatusTx(tx, id, model.RemissionClosed)
	})
}

// ── Summary ───────────────────────────────────────────────────────────────────

func (s *remissionService) Summary(ctx context.Context, id uuid.UUID) (*dto.SummaryResponse, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRemissionNotFound
		}
		return nil, err
	}

	led, err := s.computeLedger(s.repo.DB(), id)
	if err != nil {
		return nil, err
	}
	return &dto.SummaryResponse{
		TotalSales:   led.totalSales,
		TotalCredits: led.totalCredits,
		SalesCount:   led.salesCount,
		Balance:      led.balance(),
	}, nil
}

// ── CRUD ──────────────────────────────────────────────────────────────────────

func (s *remissionService) Create(ctx context.Context, req dto.CreateRemissionRequest) (*dto.RemissionResponse, error) {
	orderID, err := uuid.Parse(req.OrderID)
	if err != nil {
		return nil, ErrOrderNotFound
	}
	if _, err := s.orderRepo.FindByID(ctx, orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	rem := &model.Remission{
		OrderID: orderID,
		Folio:   req.Folio,
		Status:  model.RemissionOpen,
	}
	if err := s.repo.Create(ctx, rem); err != nil {
		return nil, err
	}
	return mapRemission(rem), nil
}

func (s *remissionService) Get(ctx context.Context, id uuid.UUID) (*dto.RemissionResponse, error) {
	rem, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRemissionNotFound
		}
		return nil, err
	}
	return mapRemission(rem), nil
}

func (s *remissionService) List(ctx context.Context) ([]dto.RemissionResponse, error) {
	remissions, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.RemissionResponse, 0, len(remissions))
	for i := range remissions {
		result = append(result, *mapRemission(&remissions[i]))
	}
	return result, nil
}

// Update never touches status: that field belongs to the lifecycle.
func (s *remissionService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateRemissionRequest) (*dto.RemissionResponse, error) {
	rem, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRemissionNotFound
		}
		return nil, err
	}

	if req.OrderID != nil {
		orderID, err := uuid.Parse(*req.OrderID)
		if err != nil {
			return nil, ErrOrderNotFound
		}
		if _, err := s.orderRepo.FindByID(ctx, orderID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrOrderNotFound
			}
			return nil, err
		}
		rem.OrderID = orderID
	}
	if req.Folio != nil {
		rem.Folio = *req.Folio
	}

	if err := s.repo.Update(ctx, rem); err != nil {
		return nil, err
	}
	return mapRemission(rem), nil
}

func (s *remissionService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRemissionNotFound
		}
		return err
	}

	salesCount, err := s.saleRepo.CountByRemission(ctx, id)
	if err != nil {
		return err
	}
	creditsCount, err := s.creditRepo.CountByRemission(ctx, id)
	if err != nil {
		return err
	}
	if salesCount > 0 || creditsCount > 0 {
		return ErrRemissionHasChildren
	}
	return s.repo.Delete(ctx, id)
}

func mapRemission(rem *model.Remission) *dto.RemissionResponse {
	return &dto.RemissionResponse{
		ID:        rem.ID.String(),
		OrderID:   rem.OrderID.String(),
		Folio:     rem.Folio,
		Status:    rem.Status,
		CreatedAt: rem.CreatedAt.UTC().Format(time.RFC3339),
	}
}
