package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/talentpulse/backend/internal/model"
)

// Category is the camel-cased in-app projection of a categories row.
type Category struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IconName    string    `json:"iconName"`
}

func CategoryFromModel(m model.Category) Category {
	iconName := m.IconName
	if iconName == "" {
		iconName = "code"
	}
	return Category{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		IconName:    iconName,
	}
}

type PackCriteria struct {
	MinimumScore      float64  `json:"minimumScore"`
	MinimumExperience float64  `json:"minimumExperience"`
	RequiredSkills    []string `json:"requiredSkills"`
	EducationLevel    string   `json:"educationLevel"`
	OtherCriteria     []string `json:"otherCriteria"`
}

type PackStats struct {
	AverageScore      float64 `json:"averageScore"`
	AverageExperience float64 `json:"averageExperience"`
}

type TalentPack struct {
	ID             uuid.UUID    `json:"id"`
	Name           string       `json:"name"`
	Description    string       `json:"description"`
	CategoryID     uuid.UUID    `json:"categoryId"`
	CategoryName   string       `json:"categoryName"`
	CandidateCount int          `json:"candidateCount"`
	Price          float64      `json:"price"`
	Criteria       PackCriteria `json:"criteria"`
	Stats          PackStats    `json:"stats"`
	IsFeatured     bool         `json:"isFeatured"`
	CreatedAt      time.Time    `json:"createdAt"`
	UpdatedAt      time.Time    `json:"updatedAt"`
}

func PackFromModel(m model.TalentPack) TalentPack {
	requiredSkills := []string(m.RequiredSkills)
	if requiredSkills == nil {
		requiredSkills = []string{}
	}
	otherCriteria := []string(m.OtherCriteria)
	if otherCriteria == nil {
		otherCriteria = []string{}
	}
	return TalentPack{
		ID:             m.ID,
		Name:           m.Name,
		Description:    m.Description,
		CategoryID:     m.CategoryID,
		CategoryName:   m.Category.Name,
		CandidateCount: m.CandidateCount,
		Price:          m.Price,
		Criteria: PackCriteria{
			MinimumScore:      m.MinimumScore,
			MinimumExperience: m.MinimumExperience,
			RequiredSkills:    requiredSkills,
			EducationLevel:    m.EducationLevel,
			OtherCriteria:     otherCriteria,
		},
		Stats: PackStats{
			AverageScore:      m.AverageScore,
			AverageExperience: m.AverageExperience,
		},
		IsFeatured: m.IsFeatured,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

type Purchase struct {
	ID           uuid.UUID `json:"id"`
	PackID       uuid.UUID `json:"packId"`
	PackName     string    `json:"packName"`
	Price        float64   `json:"price"`
	PurchaseDate time.Time `json:"purchaseDate"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

func PurchaseFromModel(m model.Purchase) Purchase {
	return Purchase{
		ID:           m.ID,
		PackID:       m.PackID,
		PackName:     m.Pack.Name,
		Price:        m.Price,
		PurchaseDate: m.PurchaseDate,
		ExpiresAt:    m.ExpiresAt,
	}
}

type CategoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	IconName    string `json:"iconName"`
}

type PackInput struct {
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	CategoryID        uuid.UUID `json:"categoryId"`
	Price             float64   `json:"price"`
	MinimumScore      float64   `json:"minimumScore"`
	MinimumExperience float64   `json:"minimumExperience"`
	RequiredSkills    []string  `json:"requiredSkills"`
	EducationLevel    string    `json:"educationLevel"`
	OtherCriteria     []string  `json:"otherCriteria"`
	IsFeatured        bool      `json:"isFeatured"`
}

type CompanyStats struct {
	ActivePacks      int64  `json:"activePacks"`
	TotalPurchases   int64  `json:"totalPurchases"`
	TestCount        int64  `json:"testCount"`
	SubscriptionTier string `json:"subscriptionTier"`
}

type AdminStats struct {
	TotalCandidates       int64 `json:"totalCandidates"`
	NewCandidatesThisWeek int64 `json:"newCandidatesThisWeek"`
	TotalCompanies        int64 `json:"totalCompanies"`
	PendingTests          int64 `json:"pendingTests"`
}
