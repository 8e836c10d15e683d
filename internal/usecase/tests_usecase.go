package usecase

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/talentpulse/backend/internal/apperr"
	"github.com/talentpulse/backend/internal/dto"
	"github.com/talentpulse/backend/internal/model"
	"github.com/talentpulse/backend/internal/repository"
	"gorm.io/gorm"
)

type TestsUsecaseInterface interface {
	ListForCompany(ctx context.Context, companyID uuid.UUID) []dto.CompanyTest
	Create(ctx context.Context, companyID uuid.UUID, req dto.CreateTestRequest) (*dto.CompanyTest, error)
	AddQuestions(ctx context.Context, companyID, testID uuid.UUID, req dto.AddQuestionsRequest) (*dto.CompanyTest, error)
	GetWithQuestions(ctx context.Context, testID uuid.UUID) (*dto.CompanyTest, error)
	ListByStatus(ctx context.Context, status *model.TestStatus) []dto.CompanyTest
	Review(ctx context.Context, testID uuid.UUID, req dto.ReviewTestRequest) (*dto.CompanyTest, error)
}

type TestsUsecase struct {
	tests     repository.TestRepository
	catalog   repository.CatalogRepository
	users     repository.UserRepository
	companies repository.CompanyRepository
}

func NewTestsUsecase(
	tests repository.TestRepository,
	catalog repository.CatalogRepository,
	users repository.UserRepository,
	companies repository.CompanyRepository,
) *TestsUsecase {
	return &TestsUsecase{tests: tests, catalog: catalog, users: users, companies: companies}
}

func (uc *TestsUsecase) ListForCompany(ctx context.Context, companyID uuid.UUID) []dto.CompanyTest {
	tests, err := uc.tests.ListByCompany(ctx, companyID)
	if err != nil {
		log.Printf("failed to fetch tests for company %s: %v", companyID, err)
		return []dto.CompanyTest{}
	}
	return testsToDTO(tests)
}

// Create registers a new test in pending status. A company-role profile whose
// companies row has gone missing gets a minimal one recreated first, so the
// test's company reference always resolves.
func (uc *TestsUsecase) Create(ctx context.Context, companyID uuid.UUID, req dto.CreateTestRequest) (*dto.CompanyTest, error) {
	fields := map[string]string{}
	if req.Title == "" {
		fields["title"] = "is required"
	}
	if req.CategoryID == uuid.Nil {
		fields["categoryId"] = "is required"
	}
	if len(fields) > 0 {
		return nil, apperr.Validation("invalid test details", fields)
	}

	category, err := uc.catalog.FindCategoryByID(ctx, req.CategoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("category not found")
		}
		return nil, apperr.Transient("could not load category", err)
	}

	if err := uc.ensureCompanyRecord(ctx, companyID); err != nil {
		return nil, err
	}

	test := &model.CompanyTest{
		ID:          uuid.New(),
		CompanyID:   companyID,
		CategoryID:  category.ID,
		Category:    *category,
		Title:       req.Title,
		Description: req.Description,
		Status:      model.TestPending,
	}
	if err := uc.tests.Create(ctx, test); err != nil {
		return nil, apperr.Transient("could not create test", err)
	}

	out := dto.TestFromModel(*test)
	return &out, nil
}

// AddQuestions appends questions to a company's own test, preserving the
// submitted order indexes.
func (uc *TestsUsecase) AddQuestions(ctx context.Context, companyID, testID uuid.UUID, req dto.AddQuestionsRequest) (*dto.CompanyTest, error) {
	if len(req.Questions) == 0 {
		return nil, apperr.Validation("at least one question is required", nil)
	}

	test, err := uc.findTest(ctx, testID)
	if err != nil {
		return nil, err
	}
	if test.CompanyID != companyID {
		return nil, apperr.Unauthorized("this test belongs to another company")
	}

	questions := make([]model.TestQuestion, 0, len(req.Questions))
	for i, q := range req.Questions {
		if q.QuestionText == "" {
			return nil, apperr.Validation("question text is required", map[string]string{"questionText": "is required"})
		}
		qType := model.QuestionType(q.QuestionType)
		if !qType.Valid() {
			return nil, apperr.Validation("unknown question type", map[string]string{"questionType": q.QuestionType})
		}
		orderIndex := q.OrderIndex
		if orderIndex == 0 {
			orderIndex = i + 1
		}
		questions = append(questions, model.TestQuestion{
			ID:              uuid.New(),
			TestID:          test.ID,
			QuestionText:    q.QuestionText,
			QuestionType:    qType,
			ExpectedAnswer:  q.ExpectedAnswer,
			ScoringCriteria: q.ScoringCriteria,
			OrderIndex:      orderIndex,
		})
	}
	if err := uc.tests.AddQuestions(ctx, questions); err != nil {
		return nil, apperr.Transient("could not save questions", err)
	}

	return uc.GetWithQuestions(ctx, test.ID)
}

// GetWithQuestions returns a test with its full question set, expected
// answers included. Callers gate access by role; candidates go through
// AvailableTest instead.
func (uc *TestsUsecase) GetWithQuestions(ctx context.Context, testID uuid.UUID) (*dto.CompanyTest, error) {
	test, err := uc.findTest(ctx, testID)
	if err != nil {
		return nil, err
	}
	questions, err := uc.tests.ListQuestions(ctx, test.ID)
	if err != nil {
		return nil, apperr.Transient("could not load test questions", err)
	}

	out := dto.TestFromModel(*test)
	for _, q := range questions {
		out.Questions = append(out.Questions, dto.QuestionFromModel(q))
	}
	return &out, nil
}

func (uc *TestsUsecase) ListByStatus(ctx context.Context, status *model.TestStatus) []dto.CompanyTest {
	tests, err := uc.tests.ListByStatus(ctx, status)
	if err != nil {
		log.Printf("failed to fetch tests by status: %v", err)
		return []dto.CompanyTest{}
	}
	return testsToDTO(tests)
}

// Review applies an admin decision to a pending test. Only "approved" and
// "rejected" are accepted, and only pending tests may be reviewed.
func (uc *TestsUsecase) Review(ctx context.Context, testID uuid.UUID, req dto.ReviewTestRequest) (*dto.CompanyTest, error) {
	decision := model.TestStatus(req.Decision)
	if decision != model.TestApproved && decision != model.TestRejected {
		return nil, apperr.Validation("decision must be approved or rejected", map[string]string{"decision": req.Decision})
	}

	test, err := uc.findTest(ctx, testID)
	if err != nil {
		return nil, err
	}
	if test.Status != model.TestPending {
		return nil, apperr.Validation("only pending tests can be reviewed", nil)
	}

	if err := uc.tests.UpdateStatus(ctx, test.ID, decision); err != nil {
		return nil, apperr.Transient("could not update test status", err)
	}

	test.Status = decision
	out := dto.TestFromModel(*test)
	return &out, nil
}

func (uc *TestsUsecase) ensureCompanyRecord(ctx context.Context, companyID uuid.UUID) error {
	_, err := uc.companies.FindByID(ctx, companyID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.Transient("could not load company record", err)
	}

	profile, err := uc.users.FindByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("company profile not found")
		}
		return apperr.Transient("could not load profile", err)
	}
	if profile.Role != model.RoleCompany {
		return apperr.Unauthorized("only companies can create tests")
	}

	log.Printf("recreating missing company record for %s", companyID)
	company := &model.Company{
		ID:               companyID,
		CompanyName:      profile.FullName,
		ContactName:      profile.FullName,
		SubscriptionTier: model.TierBasic,
	}
	if err := uc.companies.Create(ctx, company); err != nil {
		return apperr.Transient("could not recreate company record", err)
	}
	return nil
}

func (uc *TestsUsecase) findTest(ctx context.Context, id uuid.UUID) (*model.CompanyTest, error) {
	test, err := uc.tests.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("test not found")
		}
		return nil, apperr.Transient("could not load test", err)
	}
	return test, nil
}

func testsToDTO(tests []model.CompanyTest) []dto.CompanyTest {
	out := make([]dto.CompanyTest, 0, len(tests))
	for _, t := range tests {
		out = append(out, dto.TestFromModel(t))
	}
	return out
}
