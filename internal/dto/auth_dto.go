package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/talentpulse/backend/internal/model"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CandidateSignupRequest struct {
	FullName      string `json:"fullName"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	AgreedToTerms bool   `json:"agreedToTerms"`
}

type CompanySignupRequest struct {
	CompanyName   string `json:"companyName"`
	ContactName   string `json:"contactName"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	Industry      string `json:"industry"`
	Size          string `json:"size"`
	AgreedToTerms bool   `json:"agreedToTerms"`
	Phone         string `json:"phone,omitempty"`
	Website       string `json:"website,omitempty"`
	Description   string `json:"description,omitempty"`
}

type ResendVerificationRequest struct {
	Email string `json:"email"`
}

type CandidateDetailsDTO struct {
	FullName      string   `json:"fullName"`
	ProfileStatus string   `json:"profileStatus"`
	CVURL         string   `json:"cvUrl,omitempty"`
	Category      string   `json:"category,omitempty"`
	OverallScore  *float64 `json:"overallScore,omitempty"`
}

type CompanyDetailsDTO struct {
	CompanyName      string `json:"companyName"`
	ContactName      string `json:"contactName"`
	Industry         string `json:"industry,omitempty"`
	Size             string `json:"size,omitempty"`
	SubscriptionTier string `json:"subscriptionTier"`
}

type IdentityDTO struct {
	ID               uuid.UUID            `json:"id"`
	Email            string               `json:"email"`
	FullName         string               `json:"fullName,omitempty"`
	Role             string               `json:"role,omitempty"`
	CandidateDetails *CandidateDetailsDTO `json:"candidateDetails,omitempty"`
	CompanyDetails   *CompanyDetailsDTO   `json:"companyDetails,omitempty"`
}

type LoginResponse struct {
	Token    string      `json:"token"`
	Redirect string      `json:"redirect"`
	User     IdentityDTO `json:"user"`
}

// UserSummary is the admin-facing projection of a profiles row.
type UserSummary struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	FullName      string    `json:"fullName"`
	Role          string    `json:"role"`
	EmailVerified bool      `json:"emailVerified"`
	CreatedAt     time.Time `json:"createdAt"`
}

func UserSummaryFromModel(m model.Profile) UserSummary {
	return UserSummary{
		ID:            m.ID,
		Email:         m.Email,
		FullName:      m.FullName,
		Role:          m.Role.String(),
		EmailVerified: m.EmailVerified,
		CreatedAt:     m.CreatedAt,
	}
}

func IdentityFromModel(identity *model.Identity) IdentityDTO {
	out := IdentityDTO{
		ID:       identity.ID,
		Email:    identity.Email,
		FullName: identity.FullName,
		Role:     identity.Role.String(),
	}
	if identity.Candidate != nil {
		out.CandidateDetails = &CandidateDetailsDTO{
			FullName:      identity.Candidate.FullName,
			ProfileStatus: string(identity.Candidate.Stage),
			CVURL:         identity.Candidate.CVURL,
			Category:      identity.Candidate.Category,
			OverallScore:  identity.Candidate.OverallScore,
		}
	}
	if identity.Company != nil {
		out.CompanyDetails = &CompanyDetailsDTO{
			CompanyName:      identity.Company.CompanyName,
			ContactName:      identity.Company.ContactName,
			Industry:         identity.Company.Industry,
			Size:             identity.Company.Size,
			SubscriptionTier: string(identity.Company.SubscriptionTier),
		}
	}
	return out
}
