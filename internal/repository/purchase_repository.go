package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/talentpulse/backend/internal/model"
	"gorm.io/gorm"
)

type PurchaseRepository interface {
	Create(ctx context.Context, purchase *model.Purchase) error
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]model.Purchase, error)
	CountActiveByCompany(ctx context.Context, companyID uuid.UUID, now time.Time) (int64, error)
}

type purchaseRepository struct {
	db *gorm.DB
}

func NewPurchaseRepository(db *gorm.DB) PurchaseRepository {
	return &purchaseRepository{db: db}
}

func (r *purchaseRepository) Create(ctx context.Context, purchase *model.Purchase) error {
	return r.db.WithContext(ctx).Create(purchase).Error
}

func (r *purchaseRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]model.Purchase, error) {
	var purchases []model.Purchase
	err := r.db.WithContext(ctx).Preload("Pack").
		Where("company_id = ?", companyID).
		Order("purchase_date DESC").Find(&purchases).Error
	return purchases, err
}

func (r *purchaseRepository) CountActiveByCompany(ctx context.Context, companyID uuid.UUID, now time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Purchase{}).
		Where("company_id = ? AND expires_at > ?", companyID, now).Count(&count).Error
	return count, err
}
