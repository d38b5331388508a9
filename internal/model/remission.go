package model

import (
	"time"

	"github.com/google/uuid"
)

// Remission lifecycle states. The only legal transition is open → closed,
// performed exclusively by RemissionService.Close.
const (
	RemissionOpen   = "open"
	RemissionClosed = "closed"
)

// Remission is a delivery/invoice batch tied to one order. It accumulates
// sales and credit assignments while open.
type Remission struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrderID   uuid.UUID `gorm:"type:uuid;index;not null"`
	Folio     string    `gorm:"uniqueIndex;not null"`
	Status    string    `gorm:"type:varchar(10);not null;default:'open'"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Order   *Order             `gorm:"foreignKey:OrderID;constraint:OnDelete:RESTRICT"`
	Sales   []Sale             `gorm:"foreignKey:RemissionID"`
	Credits []CreditAssignment `gorm:"foreignKey:RemissionID"`
}

func (Remission) TableName() string { return "remissions" }
