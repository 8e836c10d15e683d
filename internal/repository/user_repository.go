// Package repository provides the data access layer over the relational
// store. Each repository is a thin translation between domain reads/writes
// and GORM calls; error classification happens in the usecases.
package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/talentpulse/backend/internal/model"
	"gorm.io/gorm"
)

type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Profile, error)
	FindByEmail(ctx context.Context, email string) (*model.Profile, error)
	Upsert(ctx context.Context, profile *model.Profile) error
	List(ctx context.Context, role *model.Role, query string) ([]model.Profile, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Profile, error) {
	var profile model.Profile
	err := r.db.WithContext(ctx).First(&profile, "id = ?", id).Error
	return &profile, err
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.Profile, error) {
	var profile model.Profile
	err := r.db.WithContext(ctx).First(&profile, "email = ?", email).Error
	return &profile, err
}

func (r *userRepository) Upsert(ctx context.Context, profile *model.Profile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

func (r *userRepository) List(ctx context.Context, role *model.Role, query string) ([]model.Profile, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if role != nil {
		q = q.Where("role = ?", *role)
	}
	if query != "" {
		pattern := "%" + query + "%"
		q = q.Where("email ILIKE ? OR full_name ILIKE ?", pattern, pattern)
	}
	var profiles []model.Profile
	err := q.Find(&profiles).Error
	return profiles, err
}
