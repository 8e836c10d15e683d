package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/talentpulse/backend/internal/apperr"
	"github.com/talentpulse/backend/internal/dto"
	"github.com/talentpulse/backend/internal/model"
	"github.com/talentpulse/backend/internal/repository"
	"gorm.io/gorm"
)

type MarketplaceUsecaseInterface interface {
	ListCategories(ctx context.Context) []dto.Category
	GetCategory(ctx context.Context, id uuid.UUID) (*dto.Category, error)
	ListPacks(ctx context.Context, categoryID *uuid.UUID) []dto.TalentPack
	FeaturedPacks(ctx context.Context) []dto.TalentPack
	GetPack(ctx context.Context, id uuid.UUID) (*dto.TalentPack, error)
	PurchasePack(ctx context.Context, companyID, packID uuid.UUID) (*dto.Purchase, error)
	ListSubscriptions(ctx context.Context, companyID uuid.UUID) []dto.Purchase
	CompanyDashboard(ctx context.Context, companyID uuid.UUID) (*dto.CompanyStats, error)
	AdminDashboard(ctx context.Context) (*dto.AdminStats, error)
	ListUsers(ctx context.Context, role *model.Role, query string) []dto.UserSummary
	CreateCategory(ctx context.Context, req dto.CategoryInput) (*dto.Category, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, req dto.CategoryInput) (*dto.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
	CreatePack(ctx context.Context, req dto.PackInput) (*dto.TalentPack, error)
	UpdatePack(ctx context.Context, id uuid.UUID, req dto.PackInput) (*dto.TalentPack, error)
}

type MarketplaceUsecase struct {
	catalog    repository.CatalogRepository
	purchases  repository.PurchaseRepository
	candidates repository.CandidateRepository
	companies  repository.CompanyRepository
	tests      repository.TestRepository
	users      repository.UserRepository
}

func NewMarketplaceUsecase(
	catalog repository.CatalogRepository,
	purchases repository.PurchaseRepository,
	candidates repository.CandidateRepository,
	companies repository.CompanyRepository,
	tests repository.TestRepository,
	users repository.UserRepository,
) *MarketplaceUsecase {
	return &MarketplaceUsecase{
		catalog:    catalog,
		purchases:  purchases,
		candidates: candidates,
		companies:  companies,
		tests:      tests,
		users:      users,
	}
}

// ListCategories degrades to an empty list on store failure: listing views
// stay available even when a fetch fails.
func (uc *MarketplaceUsecase) ListCategories(ctx context.Context) []dto.Category {
	categories, err := uc.catalog.ListCategories(ctx)
	if err != nil {
		log.Printf("failed to fetch categories: %v", err)
		return []dto.Category{}
	}
	out := make([]dto.Category, 0, len(categories))
	for _, c := range categories {
		out = append(out, dto.CategoryFromModel(c))
	}
	return out
}

func (uc *MarketplaceUsecase) GetCategory(ctx context.Context, id uuid.UUID) (*dto.Category, error) {
	category, err := uc.catalog.FindCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("category not found")
		}
		return nil, apperr.Transient("could not load category", err)
	}
	out := dto.CategoryFromModel(*category)
	return &out, nil
}

func (uc *MarketplaceUsecase) ListPacks(ctx context.Context, categoryID *uuid.UUID) []dto.TalentPack {
	packs, err := uc.catalog.ListPacks(ctx, categoryID)
	if err != nil {
		log.Printf("failed to fetch talent packs: %v", err)
		return []dto.TalentPack{}
	}
	return packsToDTO(packs)
}

func (uc *MarketplaceUsecase) FeaturedPacks(ctx context.Context) []dto.TalentPack {
	packs, err := uc.catalog.ListFeaturedPacks(ctx)
	if err != nil {
		log.Printf("failed to fetch featured packs: %v", err)
		return []dto.TalentPack{}
	}
	return packsToDTO(packs)
}

func (uc *MarketplaceUsecase) GetPack(ctx context.Context, id uuid.UUID) (*dto.TalentPack, error) {
	pack, err := uc.catalog.FindPackByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("talent pack not found")
		}
		return nil, apperr.Transient("could not load talent pack", err)
	}
	out := dto.PackFromModel(*pack)
	return &out, nil
}

// PurchasePack records a purchase at the pack's current price with a
// twelve-month expiry.
func (uc *MarketplaceUsecase) PurchasePack(ctx context.Context, companyID, packID uuid.UUID) (*dto.Purchase, error) {
	pack, err := uc.catalog.FindPackByID(ctx, packID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("talent pack not found")
		}
		return nil, apperr.Transient("could not load talent pack", err)
	}

	now := time.Now()
	purchase := &model.Purchase{
		ID:           uuid.New(),
		CompanyID:    companyID,
		PackID:       pack.ID,
		Pack:         *pack,
		Price:        pack.Price,
		PurchaseDate: now,
		ExpiresAt:    now.AddDate(1, 0, 0),
	}
	if err := uc.purchases.Create(ctx, purchase); err != nil {
		return nil, apperr.Transient("could not record purchase", err)
	}

	out := dto.PurchaseFromModel(*purchase)
	return &out, nil
}

func (uc *MarketplaceUsecase) ListSubscriptions(ctx context.Context, companyID uuid.UUID) []dto.Purchase {
	purchases, err := uc.purchases.ListByCompany(ctx, companyID)
	if err != nil {
		log.Printf("failed to fetch purchases for company %s: %v", companyID, err)
		return []dto.Purchase{}
	}
	out := make([]dto.Purchase, 0, len(purchases))
	for _, p := range purchases {
		out = append(out, dto.PurchaseFromModel(p))
	}
	return out
}

func (uc *MarketplaceUsecase) CompanyDashboard(ctx context.Context, companyID uuid.UUID) (*dto.CompanyStats, error) {
	company, err := uc.companies.FindByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("company profile not found")
		}
		return nil, apperr.Transient("could not load company record", err)
	}

	now := time.Now()
	active, err := uc.purchases.CountActiveByCompany(ctx, companyID, now)
	if err != nil {
		return nil, apperr.Transient("could not count purchases", err)
	}
	all, err := uc.purchases.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, apperr.Transient("could not list purchases", err)
	}
	testCount, err := uc.tests.CountByCompany(ctx, companyID)
	if err != nil {
		return nil, apperr.Transient("could not count tests", err)
	}

	return &dto.CompanyStats{
		ActivePacks:      active,
		TotalPurchases:   int64(len(all)),
		TestCount:        testCount,
		SubscriptionTier: string(company.SubscriptionTier),
	}, nil
}

func (uc *MarketplaceUsecase) AdminDashboard(ctx context.Context) (*dto.AdminStats, error) {
	totalCandidates, err := uc.candidates.Count(ctx)
	if err != nil {
		return nil, apperr.Transient("could not count candidates", err)
	}
	newThisWeek, err := uc.candidates.CountSince(ctx, time.Now().AddDate(0, 0, -7))
	if err != nil {
		return nil, apperr.Transient("could not count recent candidates", err)
	}
	totalCompanies, err := uc.companies.Count(ctx)
	if err != nil {
		return nil, apperr.Transient("could not count companies", err)
	}
	pendingTests, err := uc.tests.CountByStatus(ctx, model.TestPending)
	if err != nil {
		return nil, apperr.Transient("could not count pending tests", err)
	}

	return &dto.AdminStats{
		TotalCandidates:       totalCandidates,
		NewCandidatesThisWeek: newThisWeek,
		TotalCompanies:        totalCompanies,
		PendingTests:          pendingTests,
	}, nil
}

// ListUsers serves the admin user-management view: optional role filter,
// case-insensitive email/name search, newest first. Degrades to an empty
// list on store failure like the other listing reads.
func (uc *MarketplaceUsecase) ListUsers(ctx context.Context, role *model.Role, query string) []dto.UserSummary {
	profiles, err := uc.users.List(ctx, role, query)
	if err != nil {
		log.Printf("failed to fetch users: %v", err)
		return []dto.UserSummary{}
	}
	out := make([]dto.UserSummary, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, dto.UserSummaryFromModel(p))
	}
	return out
}

func (uc *MarketplaceUsecase) CreateCategory(ctx context.Context, req dto.CategoryInput) (*dto.Category, error) {
	if req.Name == "" {
		return nil, apperr.Validation("category name is required", map[string]string{"name": "is required"})
	}
	category := &model.Category{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		IconName:    req.IconName,
	}
	if err := uc.catalog.CreateCategory(ctx, category); err != nil {
		return nil, apperr.Transient("could not create category", err)
	}
	out := dto.CategoryFromModel(*category)
	return &out, nil
}

func (uc *MarketplaceUsecase) UpdateCategory(ctx context.Context, id uuid.UUID, req dto.CategoryInput) (*dto.Category, error) {
	category, err := uc.catalog.FindCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("category not found")
		}
		return nil, apperr.Transient("could not load category", err)
	}
	if req.Name != "" {
		category.Name = req.Name
	}
	category.Description = req.Description
	category.IconName = req.IconName
	if err := uc.catalog.UpdateCategory(ctx, category); err != nil {
		return nil, apperr.Transient("could not update category", err)
	}
	out := dto.CategoryFromModel(*category)
	return &out, nil
}

func (uc *MarketplaceUsecase) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if _, err := uc.catalog.FindCategoryByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("category not found")
		}
		return apperr.Transient("could not load category", err)
	}
	if err := uc.catalog.DeleteCategory(ctx, id); err != nil {
		return apperr.Transient("could not delete category", err)
	}
	return nil
}

func (uc *MarketplaceUsecase) CreatePack(ctx context.Context, req dto.PackInput) (*dto.TalentPack, error) {
	if err := validatePack(req); err != nil {
		return nil, err
	}
	category, err := uc.catalog.FindCategoryByID(ctx, req.CategoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("category not found")
		}
		return nil, apperr.Transient("could not load category", err)
	}

	pack := &model.TalentPack{
		ID:                uuid.New(),
		Name:              req.Name,
		Description:       req.Description,
		CategoryID:        category.ID,
		Category:          *category,
		Price:             req.Price,
		MinimumScore:      req.MinimumScore,
		MinimumExperience: req.MinimumExperience,
		RequiredSkills:    pq.StringArray(req.RequiredSkills),
		EducationLevel:    req.EducationLevel,
		OtherCriteria:     pq.StringArray(req.OtherCriteria),
		IsFeatured:        req.IsFeatured,
	}
	if err := uc.catalog.CreatePack(ctx, pack); err != nil {
		return nil, apperr.Transient("could not create talent pack", err)
	}
	out := dto.PackFromModel(*pack)
	return &out, nil
}

func (uc *MarketplaceUsecase) UpdatePack(ctx context.Context, id uuid.UUID, req dto.PackInput) (*dto.TalentPack, error) {
	if err := validatePack(req); err != nil {
		return nil, err
	}
	pack, err := uc.catalog.FindPackByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("talent pack not found")
		}
		return nil, apperr.Transient("could not load talent pack", err)
	}

	pack.Name = req.Name
	pack.Description = req.Description
	pack.CategoryID = req.CategoryID
	pack.Price = req.Price
	pack.MinimumScore = req.MinimumScore
	pack.MinimumExperience = req.MinimumExperience
	pack.RequiredSkills = pq.StringArray(req.RequiredSkills)
	pack.EducationLevel = req.EducationLevel
	pack.OtherCriteria = pq.StringArray(req.OtherCriteria)
	pack.IsFeatured = req.IsFeatured
	if err := uc.catalog.UpdatePack(ctx, pack); err != nil {
		return nil, apperr.Transient("could not update talent pack", err)
	}
	out := dto.PackFromModel(*pack)
	return &out, nil
}

func validatePack(req dto.PackInput) error {
	fields := map[string]string{}
	if req.Name == "" {
		fields["name"] = "is required"
	}
	if req.CategoryID == uuid.Nil {
		fields["categoryId"] = "is required"
	}
	if req.Price < 0 {
		fields["price"] = "must not be negative"
	}
	if len(fields) > 0 {
		return apperr.Validation("invalid talent pack", fields)
	}
	return nil
}

func packsToDTO(packs []model.TalentPack) []dto.TalentPack {
	out := make([]dto.TalentPack, 0, len(packs))
	for _, p := range packs {
		out = append(out, dto.PackFromModel(p))
	}
	return out
}
