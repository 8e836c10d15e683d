package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/talentpulse/backend/internal/model"
	"gorm.io/gorm"
)

type CatalogRepository interface {
	ListCategories(ctx context.Context) ([]model.Category, error)
	FindCategoryByID(ctx context.Context, id uuid.UUID) (*model.Category, error)
	CreateCategory(ctx context.Context, category *model.Category) error
	UpdateCategory(ctx context.Context, category *model.Category) error
	DeleteCategory(ctx context.Context, id uuid.UUID) error

	ListPacks(ctx context.Context, categoryID *uuid.UUID) ([]model.TalentPack, error)
	ListFeaturedPacks(ctx context.Context) ([]model.TalentPack, error)
	FindPackByID(ctx context.Context, id uuid.UUID) (*model.TalentPack, error)
	CreatePack(ctx context.Context, pack *model.TalentPack) error
	UpdatePack(ctx context.Context, pack *model.TalentPack) error
}

type catalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) ListCategories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	err := r.db.WithContext(ctx).Order("name").Find(&categories).Error
	return categories, err
}

func (r *catalogRepository) FindCategoryByID(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	var category model.Category
	err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error
	return &category, err
}

func (r *catalogRepository) CreateCategory(ctx context.Context, category *model.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *catalogRepository) UpdateCategory(ctx context.Context, category *model.Category) error {
	return r.db.WithContext(ctx).Save(category).Error
}

func (r *catalogRepository) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Category{}, "id = ?", id).Error
}

func (r *catalogRepository) ListPacks(ctx context.Context, categoryID *uuid.UUID) ([]model.TalentPack, error) {
	var packs []model.TalentPack
	query := r.db.WithContext(ctx).Preload("Category")
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}
	err := query.Find(&packs).Error
	return packs, err
}

func (r *catalogRepository) ListFeaturedPacks(ctx context.Context) ([]model.TalentPack, error) {
	var packs []model.TalentPack
	err := r.db.WithContext(ctx).Preload("Category").
		Where("is_featured = ?", true).Find(&packs).Error
	return packs, err
}

func (r *catalogRepository) FindPackByID(ctx context.Context, id uuid.UUID) (*model.TalentPack, error) {
	var pack model.TalentPack
	err := r.db.WithContext(ctx).Preload("Category").First(&pack, "id = ?", id).Error
	return &pack, err
}

func (r *catalogRepository) CreatePack(ctx context.Context, pack *model.TalentPack) error {
	return r.db.WithContext(ctx).Create(pack).Error
}

func (r *catalogRepository) UpdatePack(ctx context.Context, pack *model.TalentPack) error {
	return r.db.WithContext(ctx).Save(pack).Error
}
