package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale is a line item on a remission. Gross amount = Subtotal + Tax.
// Sales are immutable once written as far as the ledger is concerned:
// totals are always recomputed from current rows, never cached.
type Sale struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RemissionID uuid.UUID       `gorm:"type:uuid;index;not null"`
	Subtotal    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Tax         decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt   time.Time       `gorm:"index"`
	UpdatedAt   time.Time

	Remission *Remission `gorm:"foreignKey:RemissionID;constraint:OnDelete:RESTRICT"`
}

func (Sale) TableName() string { return "sales" }
