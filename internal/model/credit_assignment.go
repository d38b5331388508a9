package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreditAssignment is a monetary deduction applied against a remission's
// sales total. Amount is strictly positive; the reason is mandatory.
type CreditAssignment struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RemissionID uuid.UUID       `gorm:"type:uuid;index;not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Reason      string          `gorm:"type:varchar(255);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Remission *Remission `gorm:"foreignKey:RemissionID;constraint:OnDelete:RESTRICT"`
}

func (CreditAssignment) TableName() string { return "credit_assignments" }
