package model

import (
	"time"

	"github.com/google/uuid"
)

// Customer is a buyer that places orders. Only the name is mandatory.
type Customer struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"not null"`
	Email     *string
	IsActive  bool `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Orders []Order `gorm:"foreignKey:CustomerID"`
}

func (Customer) TableName() string { return "customers" }
