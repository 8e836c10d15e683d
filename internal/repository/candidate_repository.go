package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/talentpulse/backend/internal/model"
	"gorm.io/gorm"
)

type CandidateRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Candidate, error)
	Create(ctx context.Context, candidate *model.Candidate) error
	Update(ctx context.Context, candidate *model.Candidate) error
	Count(ctx context.Context) (int64, error)
	CountSince(ctx context.Context, since time.Time) (int64, error)
}

type candidateRepository struct {
	db *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) CandidateRepository {
	return &candidateRepository{db: db}
}

func (r *candidateRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Candidate, error) {
	var candidate model.Candidate
	err := r.db.WithContext(ctx).First(&candidate, "id = ?", id).Error
	return &candidate, err
}

func (r *candidateRepository) Create(ctx context.Context, candidate *model.Candidate) error {
	return r.db.WithContext(ctx).Create(candidate).Error
}

func (r *candidateRepository) Update(ctx context.Context, candidate *model.Candidate) error {
	return r.db.WithContext(ctx).Save(candidate).Error
}

func (r *candidateRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Candidate{}).Count(&count).Error
	return count, err
}

func (r *candidateRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Candidate{}).
		Where("created_at >= ?", since).Count(&count).Error
	return count, err
}
