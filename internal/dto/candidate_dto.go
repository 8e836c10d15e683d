package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/talentpulse/backend/internal/model"
)

// CandidateDashboard aggregates everything the candidate dashboard shows:
// the current stage, its milestone flags, and the single next action.
type CandidateDashboard struct {
	ID            uuid.UUID        `json:"id"`
	FullName      string           `json:"fullName"`
	ProfileStatus string           `json:"profileStatus"`
	Milestones    model.Milestones `json:"milestones"`
	NextAction    string           `json:"nextAction"`
	CVURL         string           `json:"cvUrl,omitempty"`
	Category      string           `json:"category,omitempty"`
	OverallScore  *float64         `json:"overallScore,omitempty"`
	LastTested    *time.Time       `json:"lastTested,omitempty"`
}

func DashboardFromCandidate(c *model.Candidate) CandidateDashboard {
	return CandidateDashboard{
		ID:            c.ID,
		FullName:      c.FullName,
		ProfileStatus: string(c.ProfileStatus),
		Milestones:    c.ProfileStatus.Milestones(),
		NextAction:    string(c.ProfileStatus.NextAction()),
		CVURL:         c.CVURL,
		Category:      c.Category,
		OverallScore:  c.OverallScore,
		LastTested:    c.LastTested,
	}
}

type VerifyProfileRequest struct {
	FullName string `json:"fullName"`
	Category string `json:"category"`
}

type CVUploadResponse struct {
	CVURL         string `json:"cvUrl"`
	ProfileStatus string `json:"profileStatus"`
}
