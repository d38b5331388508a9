package service

import (
	"context"
	"sort"
	"time"

	"comercio/internal/dto"
	"comercio/internal/repository"

	"github.com/shopspring/decimal"
)

// ReportService is the daily sales aggregation engine. It buckets sales by
// calendar date in a fixed reference timezone and sums subtotal and tax as
// exact decimals.
type ReportService interface {
	DailySales(ctx context.Context, from, to time.Time) ([]dto.DailySalesRow, error)
}

type reportService struct {
	saleRepo repository.SaleRepository
	loc      *time.Location
}

// NewReportService builds the engine. loc is the reference timezone in
// which sale timestamps are bucketed into calendar days.
func NewReportService(saleRepo repository.SaleRepository, loc *time.Location) ReportService {
	return &reportService{saleRepo: saleRepo, loc: loc}
}

// DailySales groups the sales of the inclusive [from, to] date range by
// calendar day, ascending. Days without sales produce no row; a reversed
// range simply yields an empty report.
func (s *reportService) DailySales(ctx context.Context, from, to time.Time) ([]dto.DailySalesRow, error) {
	start := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, s.loc)
	end := time.Date(to.Year(), to.Month(), to.Day(), 23, 59, 59, 999999999, s.loc)

	sales, err := s.saleRepo.ListByCreatedRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	groups := make(map[string]*dto.DailySalesRow)
	for i := range sales {
		day := sales[i].CreatedAt.In(s.loc).Format("2006-01-02")
		row, ok := groups[day]
		if !ok {
			row = &dto.DailySalesRow{
				Date:       day,
				TotalSales: decimal.Zero,
				TotalTax:   decimal.Zero,
			}
			groups[day] = row
		}
		row.TotalSales = row.TotalSales.Add(sales[i].Subtotal)
		row.TotalTax = row.TotalTax.Add(sales[i].Tax)
		row.SalesCount++
	}

	days := make([]string, 0, len(groups))
	for day := range groups {
		days = append(days, day)
	}
	sort.Strings(days)

	rows := make([]dto.DailySalesRow, 0, len(days))
	for _, day := range days {
		rows = append(rows, *groups[day])
	}
	return rows, nil
}
