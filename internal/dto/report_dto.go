package dto

import "github.com/shopspring/decimal"

// DailySalesRow is one calendar day of the daily sales report. TotalSales
// sums subtotals only (tax is reported separately). Dates without sales
// produce no row.
type DailySalesRow struct {
	Date       string          `json:"date"` // YYYY-MM-DD in the reference timezone
	TotalSales decimal.Decimal `json:"total_sales"`
	TotalTax   decimal.Decimal `json:"total_tax"`
	SalesCount int             `json:"sales_count"`
}
