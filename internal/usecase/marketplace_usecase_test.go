package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/talentpulse/backend/internal/apperr"
	"github.com/talentpulse/backend/internal/dto"
	"github.com/talentpulse/backend/internal/model"
	"gorm.io/gorm"
)

func newMarketplaceUsecase(catalog *stubCatalogRepo, purchases *stubPurchaseRepo) *MarketplaceUsecase {
	return NewMarketplaceUsecase(catalog, purchases, &stubCandidateRepo{}, &stubCompanyRepo{}, &stubTestRepo{}, &stubUserRepo{})
}

func TestListCategories_DegradesToEmptyOnError(t *testing.T) {
	catalog := &stubCatalogRepo{
		listCategories: func() ([]model.Category, error) {
			return nil, gorm.ErrInvalidDB
		},
	}
	uc := newMarketplaceUsecase(catalog, &stubPurchaseRepo{})

	out := uc.ListCategories(context.Background())
	if out == nil {
		t.Fatal("expected an empty slice, got nil")
	}
	if len(out) != 0 {
		t.Errorf("len = %d, want 0", len(out))
	}
}

func TestListPacks_DegradesToEmptyOnError(t *testing.T) {
	catalog := &stubCatalogRepo{
		listPacks: func(categoryID *uuid.UUID) ([]model.TalentPack, error) {
			return nil, gorm.ErrInvalidDB
		},
	}
	uc := newMarketplaceUsecase(catalog, &stubPurchaseRepo{})

	if out := uc.ListPacks(context.Background(), nil); out == nil || len(out) != 0 {
		t.Errorf("expected empty slice, got %v", out)
	}
}

func TestGetPack_NotFound(t *testing.T) {
	uc := newMarketplaceUsecase(&stubCatalogRepo{}, &stubPurchaseRepo{})

	_, err := uc.GetPack(context.Background(), uuid.New())
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestPurchasePack_CopiesPriceAndSetsExpiry(t *testing.T) {
	packID := uuid.New()
	catalog := &stubCatalogRepo{
		findPackByID: func(id uuid.UUID) (*model.TalentPack, error) {
			return &model.TalentPack{ID: packID, Name: "Senior Engineers", Price: 499.99}, nil
		},
	}
	var recorded *model.Purchase
	purchases := &stubPurchaseRepo{
		create: func(p *model.Purchase) error {
			recorded = p
			return nil
		},
	}
	uc := newMarketplaceUsecase(catalog, purchases)

	before := time.Now()
	out, err := uc.PurchasePack(context.Background(), uuid.New(), packID)
	if err != nil {
		t.Fatalf("purchase failed: %v", err)
	}
	if recorded == nil {
		t.Fatal("expected purchase row write")
	}
	if recorded.Price != 499.99 {
		t.Errorf("price = %v, want 499.99", recorded.Price)
	}
	wantExpiry := before.AddDate(1, 0, 0)
	if recorded.ExpiresAt.Before(wantExpiry.Add(-time.Minute)) || recorded.ExpiresAt.After(wantExpiry.Add(time.Minute)) {
		t.Errorf("expiresAt = %v, want about a year out", recorded.ExpiresAt)
	}
	if out.PackName != "Senior Engineers" {
		t.Errorf("pack name = %q", out.PackName)
	}
}

func TestPurchasePack_UnknownPack(t *testing.T) {
	uc := newMarketplaceUsecase(&stubCatalogRepo{}, &stubPurchaseRepo{})

	_, err := uc.PurchasePack(context.Background(), uuid.New(), uuid.New())
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCreatePack_RequiresKnownCategory(t *testing.T) {
	uc := newMarketplaceUsecase(&stubCatalogRepo{}, &stubPurchaseRepo{})

	_, err := uc.CreatePack(context.Background(), dto.PackInput{
		Name: "Pack", CategoryID: uuid.New(), Price: 10,
	})
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("expected not found for unknown category, got %v", err)
	}
}

func TestCreatePack_ValidatesInput(t *testing.T) {
	uc := newMarketplaceUsecase(&stubCatalogRepo{}, &stubPurchaseRepo{})

	_, err := uc.CreatePack(context.Background(), dto.PackInput{Price: -1})
	appErr, ok := err.(*apperr.Error)
	if !ok || appErr.Kind != apperr.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	for _, field := range []string{"name", "categoryId", "price"} {
		if _, present := appErr.Fields[field]; !present {
			t.Errorf("missing field error for %q", field)
		}
	}
}

func TestListUsers_PassesFilters(t *testing.T) {
	var gotRole *model.Role
	var gotQuery string
	users := &stubUserRepo{
		list: func(role *model.Role, query string) ([]model.Profile, error) {
			gotRole = role
			gotQuery = query
			return []model.Profile{
				{ID: uuid.New(), Email: "ada@b.com", FullName: "Ada", Role: model.RoleCandidate},
			}, nil
		},
	}
	uc := NewMarketplaceUsecase(&stubCatalogRepo{}, &stubPurchaseRepo{}, &stubCandidateRepo{}, &stubCompanyRepo{}, &stubTestRepo{}, users)

	role := model.RoleCandidate
	out := uc.ListUsers(context.Background(), &role, "ada")
	if gotRole == nil || *gotRole != model.RoleCandidate {
		t.Errorf("role filter = %v, want candidate", gotRole)
	}
	if gotQuery != "ada" {
		t.Errorf("query = %q, want ada", gotQuery)
	}
	if len(out) != 1 || out[0].Email != "ada@b.com" || out[0].Role != "candidate" {
		t.Errorf("unexpected result %+v", out)
	}
}

func TestListUsers_DegradesToEmptyOnError(t *testing.T) {
	users := &stubUserRepo{
		list: func(role *model.Role, query string) ([]model.Profile, error) {
			return nil, gorm.ErrInvalidDB
		},
	}
	uc := NewMarketplaceUsecase(&stubCatalogRepo{}, &stubPurchaseRepo{}, &stubCandidateRepo{}, &stubCompanyRepo{}, &stubTestRepo{}, users)

	if out := uc.ListUsers(context.Background(), nil, ""); out == nil || len(out) != 0 {
		t.Errorf("expected empty slice, got %v", out)
	}
}

func TestCategoryIconDefaults(t *testing.T) {
	out := dto.CategoryFromModel(model.Category{ID: uuid.New(), Name: "Design"})
	if out.IconName != "code" {
		t.Errorf("iconName = %q, want code default", out.IconName)
	}
}
