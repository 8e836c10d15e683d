package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/talentpulse/backend/internal/model"
	"github.com/talentpulse/backend/internal/service"
	"gorm.io/gorm"
)

// Stub repositories back the usecase tests. Unset hooks report
// gorm.ErrRecordNotFound for reads and succeed for writes.

type stubUserRepo struct {
	findByID    func(id uuid.UUID) (*model.Profile, error)
	findByEmail func(email string) (*model.Profile, error)
	upsert      func(profile *model.Profile) error
	list        func(role *model.Role, query string) ([]model.Profile, error)
	upsertCalls int
}

func (s *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Profile, error) {
	if s.findByID == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return s.findByID(id)
}

func (s *stubUserRepo) FindByEmail(_ context.Context, email string) (*model.Profile, error) {
	if s.findByEmail == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return s.findByEmail(email)
}

func (s *stubUserRepo) Upsert(_ context.Context, profile *model.Profile) error {
	s.upsertCalls++
	if s.upsert == nil {
		return nil
	}
	return s.upsert(profile)
}

func (s *stubUserRepo) List(_ context.Context, role *model.Role, query string) ([]model.Profile, error) {
	if s.list == nil {
		return nil, nil
	}
	return s.list(role, query)
}

type stubCandidateRepo struct {
	findByID    func(id uuid.UUID) (*model.Candidate, error)
	create      func(candidate *model.Candidate) error
	update      func(candidate *model.Candidate) error
	count       func() (int64, error)
	countSince  func(since time.Time) (int64, error)
	createCalls int
	updateCalls int
}

func (s *stubCandidateRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Candidate, error) {
	if s.findByID == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return s.findByID(id)
}

func (s *stubCandidateRepo) Create(_ context.Context, candidate *model.Candidate) error {
	s.createCalls++
	if s.create == nil {
		return nil
	}
	return s.create(candidate)
}

func (s *stubCandidateRepo) Update(_ context.Context, candidate *model.Candidate) error {
	s.updateCalls++
	if s.update == nil {
		return nil
	}
	return s.update(candidate)
}

func (s *stubCandidateRepo) Count(_ context.Context) (int64, error) {
	if s.count == nil {
		return 0, nil
	}
	return s.count()
}

func (s *stubCandidateRepo) CountSince(_ context.Context, since time.Time) (int64, error) {
	if s.countSince == nil {
		return 0, nil
	}
	return s.countSince(since)
}

type stubCompanyRepo struct {
	findByID    func(id uuid.UUID) (*model.Company, error)
	create      func(company *model.Company) error
	createCalls int
}

func (s *stubCompanyRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Company, error) {
	if s.findByID == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return s.findByID(id)
}

func (s *stubCompanyRepo) Create(_ context.Context, company *model.Company) error {
	s.createCalls++
	if s.create == nil {
		return nil
	}
	return s.create(company)
}

func (s *stubCompanyRepo) Update(_ context.Context, company *model.Company) error {
	return nil
}

func (s *stubCompanyRepo) Count(_ context.Context) (int64, error) {
	return 0, nil
}

type stubCatalogRepo struct {
	listCategories    func() ([]model.Category, error)
	findCategoryByID  func(id uuid.UUID) (*model.Category, error)
	listPacks         func(categoryID *uuid.UUID) ([]model.TalentPack, error)
	listFeaturedPacks func() ([]model.TalentPack, error)
	findPackByID      func(id uuid.UUID) (*model.TalentPack, error)
	createPack        func(pack *model.TalentPack) error
	createCategory    func(category *model.Category) error
}

func (s *stubCatalogRepo) ListCategories(_ context.Context) ([]model.Category, error) {
	if s.listCategories == nil {
		return nil, nil
	}
	return s.listCategories()
}

func (s *stubCatalogRepo) FindCategoryByID(_ context.Context, id uuid.UUID) (*model.Category, error) {
	if s.findCategoryByID == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return s.findCategoryByID(id)
}

func (s *stubCatalogRepo) CreateCategory(_ context.Context, category *model.Category) error {
	if s.createCategory == nil {
		return nil
	}
	return s.createCategory(category)
}

func (s *stubCatalogRepo) UpdateCategory(_ context.Context, category *model.Category) error {
	return nil
}

func (s *stubCatalogRepo) DeleteCategory(_ context.Context, id uuid.UUID) error {
	return nil
}

func (s *stubCatalogRepo) ListPacks(_ context.Context, categoryID *uuid.UUID) ([]model.TalentPack, error) {
	if s.listPacks == nil {
		return nil, nil
	}
	return s.listPacks(categoryID)
}

func (s *stubCatalogRepo) ListFeaturedPacks(_ context.Context) ([]model.TalentPack, error) {
	if s.listFeaturedPacks == nil {
		return nil, nil
	}
	return s.listFeaturedPacks()
}

func (s *stubCatalogRepo) FindPackByID(_ context.Context, id uuid.UUID) (*model.TalentPack, error) {
	if s.findPackByID == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return s.findPackByID(id)
}

func (s *stubCatalogRepo) CreatePack(_ context.Context, pack *model.TalentPack) error {
	if s.createPack == nil {
		return nil
	}
	return s.createPack(pack)
}

func (s *stubCatalogRepo) UpdatePack(_ context.Context, pack *model.TalentPack) error {
	return nil
}

type stubTestRepo struct {
	listByCompany              func(companyID uuid.UUID) ([]model.CompanyTest, error)
	listByStatus               func(status *model.TestStatus) ([]model.CompanyTest, error)
	findByID                   func(id uuid.UUID) (*model.CompanyTest, error)
	findApprovedByCategoryName func(category string) (*model.CompanyTest, error)
	create                     func(test *model.CompanyTest) error
	updateStatus               func(id uuid.UUID, status model.TestStatus) error
	addQuestions               func(questions []model.TestQuestion) error
	listQuestions              func(testID uuid.UUID) ([]model.TestQuestion, error)
	createCalls                int
}

func (s *stubTestRepo) ListByCompany(_ context.Context, companyID uuid.UUID) ([]model.CompanyTest, error) {
	if s.listByCompany == nil {
		return nil, nil
	}
	return s.listByCompany(companyID)
}

func (s *stubTestRepo) ListByStatus(_ context.Context, status *model.TestStatus) ([]model.CompanyTest, error) {
	if s.listByStatus == nil {
		return nil, nil
	}
	return s.listByStatus(status)
}

func (s *stubTestRepo) FindByID(_ context.Context, id uuid.UUID) (*model.CompanyTest, error) {
	if s.findByID == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return s.findByID(id)
}

func (s *stubTestRepo) FindApprovedByCategoryName(_ context.Context, category string) (*model.CompanyTest, error) {
	if s.findApprovedByCategoryName == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return s.findApprovedByCategoryName(category)
}

func (s *stubTestRepo) Create(_ context.Context, test *model.CompanyTest) error {
	s.createCalls++
	if s.create == nil {
		return nil
	}
	return s.create(test)
}

func (s *stubTestRepo) UpdateStatus(_ context.Context, id uuid.UUID, status model.TestStatus) error {
	if s.updateStatus == nil {
		return nil
	}
	return s.updateStatus(id, status)
}

func (s *stubTestRepo) AddQuestions(_ context.Context, questions []model.TestQuestion) error {
	if s.addQuestions == nil {
		return nil
	}
	return s.addQuestions(questions)
}

func (s *stubTestRepo) ListQuestions(_ context.Context, testID uuid.UUID) ([]model.TestQuestion, error) {
	if s.listQuestions == nil {
		return nil, nil
	}
	return s.listQuestions(testID)
}

func (s *stubTestRepo) CountByCompany(_ context.Context, companyID uuid.UUID) (int64, error) {
	return 0, nil
}

func (s *stubTestRepo) CountByStatus(_ context.Context, status model.TestStatus) (int64, error) {
	return 0, nil
}

type stubPurchaseRepo struct {
	create        func(purchase *model.Purchase) error
	listByCompany func(companyID uuid.UUID) ([]model.Purchase, error)
}

func (s *stubPurchaseRepo) Create(_ context.Context, purchase *model.Purchase) error {
	if s.create == nil {
		return nil
	}
	return s.create(purchase)
}

func (s *stubPurchaseRepo) ListByCompany(_ context.Context, companyID uuid.UUID) ([]model.Purchase, error) {
	if s.listByCompany == nil {
		return nil, nil
	}
	return s.listByCompany(companyID)
}

func (s *stubPurchaseRepo) CountActiveByCompany(_ context.Context, companyID uuid.UUID, now time.Time) (int64, error) {
	return 0, nil
}

type stubTokenService struct{}

func (stubTokenService) Generate(userID uuid.UUID, role model.Role) (string, error) {
	return "token-" + userID.String(), nil
}

func (stubTokenService) Validate(tokenString string) (*service.Claims, error) {
	return nil, nil
}

type stubStorage struct {
	storeCV func(userID uuid.UUID, filename string, data []byte) (string, error)
}

func (s *stubStorage) StoreCV(userID uuid.UUID, filename string, data []byte) (string, error) {
	if s.storeCV == nil {
		return "http://storage.local/" + userID.String(), nil
	}
	return s.storeCV(userID, filename, data)
}

type stubExtractor struct {
	extract func(cvURL string) (*service.ExtractedProfile, error)
}

func (s *stubExtractor) Extract(_ context.Context, cvURL string) (*service.ExtractedProfile, error) {
	if s.extract == nil {
		return &service.ExtractedProfile{}, nil
	}
	return s.extract(cvURL)
}

type stubScorer struct {
	score      func(candidateID, testID uuid.UUID, answers []service.TestAnswer) (float64, error)
	scoreCalls int
}

func (s *stubScorer) Score(_ context.Context, candidateID, testID uuid.UUID, answers []service.TestAnswer) (float64, error) {
	s.scoreCalls++
	if s.score == nil {
		return 80, nil
	}
	return s.score(candidateID, testID, answers)
}
