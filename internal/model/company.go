package model

import (
	"time"

	"github.com/google/uuid"
)

type SubscriptionTier string

const (
	TierBasic      SubscriptionTier = "basic"
	TierPro        SubscriptionTier = "pro"
	TierEnterprise SubscriptionTier = "enterprise"
)

// Company is the role-specific fragment attached to a company profile.
type Company struct {
	ID               uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	CompanyName      string           `gorm:"column:company_name;not null" json:"company_name"`
	ContactName      string           `gorm:"column:contact_name" json:"contact_name"`
	Industry         string           `gorm:"type:varchar(100)" json:"industry"`
	Size             string           `gorm:"type:varchar(50)" json:"size"`
	SubscriptionTier SubscriptionTier `gorm:"type:varchar(20);default:basic" json:"subscription_tier"`
	Phone            string           `gorm:"type:varchar(50)" json:"phone"`
	Website          string           `gorm:"type:text" json:"website"`
	Description      string           `gorm:"type:text" json:"description"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

func (Company) TableName() string {
	return "companies"
}
