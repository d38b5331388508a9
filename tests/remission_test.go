package tests

import (
	"context"
	"testing"

	"comercio/internal/dto"
	"comercio/internal/model"
	"comercio/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// remissionFixture wires a RemissionService over in-memory repos and
// seeds one customer → order → open remission chain.
type remissionFixture struct {
	svc        service.RemissionService
	saleRepo   *memSaleRepo
	creditRepo *memCreditRepo
	remRepo    *memRemissionRepo
	remission  *model.Remission
}

func newRemissionFixture(t *testing.T) *remissionFixture {
	t.Helper()

	customerRepo := newMemCustomerRepo()
	orderRepo := newMemOrderRepo()
	remRepo := newMemRemissionRepo()
	saleRepo := newMemSaleRepo()
	creditRepo := newMemCreditRepo()

	customer := &model.Customer{Name: "Carlos Demo", IsActive: true}
	require.NoError(t, customerRepo.Create(context.Background(), customer))

	order := &model.Order{CustomerID: customer.ID, Folio: "FOLIO-001"}
	require.NoError(t, orderRepo.Create(context.Background(), order))

	remission := &model.Remission{OrderID: order.ID, Folio: "REM-001", Status: model.RemissionOpen}
	require.NoError(t, remRepo.Create(context.Background(), remission))

	return &remissionFixture{
		svc:        service.NewRemissionService(remRepo, orderRepo, saleRepo, creditRepo),
		saleRepo:   saleRepo,
		creditRepo: creditRepo,
		remRepo:    remRepo,
		remission:  remission,
	}
}

func (f *remissionFixture) addSale(t *testing.T, subtotal, tax string) {
	t.Helper()
	err := f.saleRepo.Create(context.Background(), &model.Sale{
		RemissionID: f.remission.ID,
		Subtotal:    decimal.RequireFromString(subtotal),
		Tax:         decimal.RequireFromString(tax),
	})
	require.NoError(t, err)
}

func (f *remissionFixture) addCredit(t *testing.T, amount, reason string) {
	t.Helper()
	err := f.creditRepo.Create(context.Background(), &model.CreditAssignment{
		RemissionID: f.remission.ID,
		Amount:      decimal.RequireFromString(amount),
		Reason:      reason,
	})
	require.NoError(t, err)
}

// ── Close lifecycle ───────────────────────────────────────────────────────────

func TestCloseRemission(t *testing.T) {
	f := newRemissionFixture(t)
	f.addSale(t, "100.00", "10.00")
	f.addSale(t, "50.00", "5.00")
	f.addCredit(t, "20.00", "Credito demo")

	err := f.svc.Close(context.Background(), f.remission.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RemissionClosed, f.remRepo.remissions[f.remission.ID].Status)
}

func TestCloseRemissionAlreadyClosed(t *testing.T) {
	f := newRemissionFixture(t)
	f.addSale(t, "100.00", "10.00")

	require.NoError(t, f.svc.Close(context.Background(), f.remission.ID))

	err := f.svc.Close(context.Background(), f.remission.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrAlreadyClosed)
	assert.EqualError(t, err, "La remission ya está cerrada.")
}

func TestCloseRemissionWithoutSales(t *testing.T) {
	f := newRemissionFixture(t)
	// Credit rows alone don't lift the guard: no sales means no close.
	f.addCredit(t, "20.00", "Credito demo")

	err := f.svc.Close(context.Background(), f.remission.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrNoSales)
	assert.EqualError(t, err, "No se puede cerrar una remission sin ventas.")
	// Status untouched on a failed close
	assert.Equal(t, model.RemissionOpen, f.remRepo.remissions[f.remission.ID].Status)
}

func TestCloseRemissionCreditsExceedTotal(t *testing.T) {
	f := newRemissionFixture(t)
	f.addSale(t, "100.00", "10.00") // total sold = 110.00
	f.addCredit(t, "110.01", "Ajuste excesivo")

	err := f.svc.Close(context.Background(), f.remission.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrCreditsExceedSales)
	assert.EqualError(t, err, "Los créditos exceden el total vendido.")
	assert.Equal(t, model.RemissionOpen, f.remRepo.remissions[f.remission.ID].Status)
}

func TestCloseRemissionCreditsEqualTotal(t *testing.T) {
	// Credits exactly equal to the total sold are allowed: the guard is
	// strictly "exceed", not "reach".
	f := newRemissionFixture(t)
	f.addSale(t, "100.00", "10.00")
	f.addCredit(t, "110.00", "Cancelacion completa")

	err := f.svc.Close(context.Background(), f.remission.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RemissionClosed, f.remRepo.remissions[f.remission.ID].Status)
}

func TestCloseRemissionNotFound(t *testing.T) {
	f := newRemissionFixture(t)

	err := f.svc.Close(context.Background(), uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrRemissionNotFound)
}

// ── Summary ───────────────────────────────────────────────────────────────────

func TestSummary(t *testing.T) {
	f := newRemissionFixture(t)
	f.addSale(t, "100.00", "10.00")
	f.addSale(t, "50.00", "5.00")
	f.addCredit(t, "20.00", "Credito demo")

	sum, err := f.svc.Summary(context.Background(), f.remission.ID)
	require.NoError(t, err)
	assert.Equal(t, "165", sum.TotalSales.String())
	assert.Equal(t, "20", sum.TotalCredits.String())
	assert.Equal(t, 2, sum.SalesCount)
	assert.Equal(t, "145", sum.Balance.String())
}

func TestSummaryEmptyRemission(t *testing.T) {
	f := newRemissionFixture(t)

	sum, err := f.svc.Summary(context.Background(), f.remission.ID)
	require.NoError(t, err)
	assert.True(t, sum.TotalSales.IsZero())
	assert.True(t, sum.TotalCredits.IsZero())
	assert.Equal(t, 0, sum.SalesCount)
	assert.True(t, sum.Balance.IsZero())
}

func TestSummaryNotFound(t *testing.T) {
	f := newRemissionFixture(t)

	_, err := f.svc.Summary(context.Background(), uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrRemissionNotFound)
}

func TestSummaryRecomputedFromCurrentRows(t *testing.T) {
	// Totals are never cached: deleting a sale must change the next summary.
	f := newRemissionFixture(t)
	f.addSale(t, "100.00", "10.00")
	f.addSale(t, "50.00", "5.00")

	sum, err := f.svc.Summary(context.Background(), f.remission.ID)
	require.NoError(t, err)
	require.Equal(t, "165", sum.TotalSales.String())

	for id := range f.saleRepo.sales {
		if f.saleRepo.sales[id].Subtotal.Equal(decimal.RequireFromString("50.00")) {
			require.NoError(t, f.saleRepo.Delete(context.Background(), id))
		}
	}

	sum, err = f.svc.Summary(context.Background(), f.remission.ID)
	require.NoError(t, err)
	assert.Equal(t, "110", sum.TotalSales.String())
	assert.Equal(t, 1, sum.SalesCount)
}

// ── CRUD guards ───────────────────────────────────────────────────────────────

func TestUpdateRemissionNeverTouchesStatus(t *testing.T) {
	f := newRemissionFixture(t)
	f.addSale(t, "10.00", "1.00")
	require.NoError(t, f.svc.Close(context.Background(), f.remission.ID))

	folio := "REM-001-EDITADA"
	resp, err := f.svc.Update(context.Background(), f.remission.ID, dto.UpdateRemissionRequest{Folio: &folio})
	require.NoError(t, err)
	assert.Equal(t, "REM-001-EDITADA", resp.Folio)
	assert.Equal(t, model.RemissionClosed, resp.Status)
}

func TestDeleteRemissionWithChildren(t *testing.T) {
	f := newRemissionFixture(t)
	f.addSale(t, "10.00", "1.00")

	err := f.svc.Delete(context.Background(), f.remission.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrRemissionHasChildren)

	// Credits alone also block deletion
	f2 := newRemissionFixture(t)
	f2.addCredit(t, "5.00", "Nota de credito")
	err = f2.svc.Delete(context.Background(), f2.remission.ID)
	assert.ErrorIs(t, err, service.ErrRemissionHasChildren)
}

func TestDeleteEmptyRemission(t *testing.T) {
	f := newRemissionFixture(t)

	require.NoError(t, f.svc.Delete(context.Background(), f.remission.ID))
	_, ok := f.remRepo.remissions[f.remission.ID]
	assert.False(t, ok)
}

func TestCreateRemissionRequiresOrder(t *testing.T) {
	f := newRemissionFixture(t)

	_, err := f.svc.Create(context.Background(), dto.CreateRemissionRequest{
		OrderID: uuid.New().String(),
		Folio:   "REM-XXX",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrOrderNotFound)
}
