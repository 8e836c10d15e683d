package model

import "github.com/google/uuid"

// Identity is one authenticated principal with its role-specific fragment
// attached. At most one of Candidate/Company is set, matching Role.
type Identity struct {
	ID        uuid.UUID
	Email     string
	FullName  string
	Role      Role
	Candidate *CandidateDetails
	Company   *CompanyDetails
}

// CandidateDetails is the in-app projection of a candidates row.
type CandidateDetails struct {
	FullName     string
	Stage        ProfileStage
	CVURL        string
	Category     string
	OverallScore *float64
}

// CompanyDetails is the in-app projection of a companies row.
type CompanyDetails struct {
	CompanyName      string
	ContactName      string
	Industry         string
	Size             string
	SubscriptionTier SubscriptionTier
}

// Details projects the storage row into its identity fragment.
func (c *Candidate) Details() *CandidateDetails {
	return &CandidateDetails{
		FullName:     c.FullName,
		Stage:        c.ProfileStatus,
		CVURL:        c.CVURL,
		Category:     c.Category,
		OverallScore: c.OverallScore,
	}
}

// Details projects the storage row into its identity fragment.
func (c *Company) Details() *CompanyDetails {
	return &CompanyDetails{
		CompanyName:      c.CompanyName,
		ContactName:      c.ContactName,
		Industry:         c.Industry,
		Size:             c.Size,
		SubscriptionTier: c.SubscriptionTier,
	}
}
