package model

import (
	"time"

	"github.com/google/uuid"
)

// Order groups the remissions of one customer under a unique folio.
// The customer reference is PROTECT-style: a customer with orders
// cannot be deleted.
type Order struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CustomerID uuid.UUID `gorm:"type:uuid;index;not null"`
	Folio      string    `gorm:"uniqueIndex;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Customer   *Customer   `gorm:"foreignKey:CustomerID;constraint:OnDelete:RESTRICT"`
	Remissions []Remission `gorm:"foreignKey:OrderID"`
}

func (Order) TableName() string { return "orders" }
