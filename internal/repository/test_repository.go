package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/talentpulse/backend/internal/model"
	"gorm.io/gorm"
)

type TestRepository interface {
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]model.CompanyTest, error)
	ListByStatus(ctx context.Context, status *model.TestStatus) ([]model.CompanyTest, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.CompanyTest, error)
	FindApprovedByCategoryName(ctx context.Context, category string) (*model.CompanyTest, error)
	Create(ctx context.Context, test *model.CompanyTest) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.TestStatus) error
	AddQuestions(ctx context.Context, questions []model.TestQuestion) error
	ListQuestions(ctx context.Context, testID uuid.UUID) ([]model.TestQuestion, error)
	CountByCompany(ctx context.Context, companyID uuid.UUID) (int64, error)
	CountByStatus(ctx context.Context, status model.TestStatus) (int64, error)
}

type testRepository struct {
	db *gorm.DB
}

func NewTestRepository(db *gorm.DB) TestRepository {
	return &testRepository{db: db}
}

func (r *testRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]model.CompanyTest, error) {
	var tests []model.CompanyTest
	err := r.db.WithContext(ctx).Preload("Category").
		Where("company_id = ?", companyID).
		Order("created_at DESC").Find(&tests).Error
	return tests, err
}

func (r *testRepository) ListByStatus(ctx context.Context, status *model.TestStatus) ([]model.CompanyTest, error) {
	var tests []model.CompanyTest
	query := r.db.WithContext(ctx).Preload("Category").Order("created_at DESC")
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	err := query.Find(&tests).Error
	return tests, err
}

func (r *testRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.CompanyTest, error) {
	var test model.CompanyTest
	err := r.db.WithContext(ctx).Preload("Category").First(&test, "id = ?", id).Error
	return &test, err
}

func (r *testRepository) FindApprovedByCategoryName(ctx context.Context, category string) (*model.CompanyTest, error) {
	var test model.CompanyTest
	err := r.db.WithContext(ctx).Preload("Category").
		Joins("JOIN categories ON categories.id = company_tests.category_id").
		Where("categories.name = ? AND company_tests.status = ?", category, model.TestApproved).
		Order("company_tests.created_at DESC").
		First(&test).Error
	return &test, err
}

func (r *testRepository) Create(ctx context.Context, test *model.CompanyTest) error {
	return r.db.WithContext(ctx).Create(test).Error
}

func (r *testRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.TestStatus) error {
	return r.db.WithContext(ctx).Model(&model.CompanyTest{}).
		Where("id = ?", id).Update("status", status).Error
}

func (r *testRepository) AddQuestions(ctx context.Context, questions []model.TestQuestion) error {
	return r.db.WithContext(ctx).Create(&questions).Error
}

func (r *testRepository) ListQuestions(ctx context.Context, testID uuid.UUID) ([]model.TestQuestion, error) {
	var questions []model.TestQuestion
	err := r.db.WithContext(ctx).
		Where("test_id = ?", testID).
		Order("order_index ASC").Find(&questions).Error
	return questions, err
}

func (r *testRepository) CountByCompany(ctx context.Context, companyID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.CompanyTest{}).
		Where("company_id = ?", companyID).Count(&count).Error
	return count, err
}

func (r *testRepository) CountByStatus(ctx context.Context, status model.TestStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.CompanyTest{}).
		Where("status = ?", status).Count(&count).Error
	return count, err
}
