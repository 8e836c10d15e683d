package model

import (
	"time"

	"github.com/google/uuid"
)

// Purchase records a company buying access to a talent pack. Price is copied
// from the pack row at purchase time so later repricing does not rewrite
// history.
type Purchase struct {
	ID           uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	CompanyID    uuid.UUID  `gorm:"column:company_id;type:uuid" json:"company_id"`
	PackID       uuid.UUID  `gorm:"column:pack_id;type:uuid" json:"pack_id"`
	Pack         TalentPack `gorm:"foreignKey:PackID" json:"-"`
	Price        float64    `gorm:"type:numeric(10,2)" json:"price"`
	PurchaseDate time.Time  `gorm:"column:purchase_date" json:"purchase_date"`
	ExpiresAt    time.Time  `gorm:"column:expires_at" json:"expires_at"`
	CreatedAt    time.Time  `json:"created_at"`
}

func (Purchase) TableName() string {
	return "purchases"
}
