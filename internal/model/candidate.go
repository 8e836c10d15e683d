package model

import (
	"time"

	"github.com/google/uuid"
)

// Candidate is the role-specific fragment attached to a candidate profile.
// It shares its primary key with the profiles row.
type Candidate struct {
	ID                   uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	FullName             string       `gorm:"column:full_name" json:"full_name"`
	Email                string       `gorm:"type:varchar(255)" json:"email"`
	ProfileStatus        ProfileStage `gorm:"type:varchar(30);default:incomplete" json:"profile_status"`
	CVURL                string       `gorm:"column:cv_url;type:text" json:"cv_url"`
	Category             string       `gorm:"type:varchar(100)" json:"category"`
	OverallScore         *float64     `json:"overall_score"`
	CredibilityTestTaken bool         `json:"credibility_test_taken"`
	LastTested           *time.Time   `json:"last_tested"`
	CreatedAt            time.Time    `json:"created_at"`
	UpdatedAt            time.Time    `json:"updated_at"`
}

func (Candidate) TableName() string {
	return "candidates"
}

// AdvanceTo moves the stage forward and reports whether it changed. A target
// behind the current stage is ignored so the lifecycle never regresses.
func (c *Candidate) AdvanceTo(next ProfileStage) bool {
	if !c.ProfileStatus.AllowsTransitionTo(next) || c.ProfileStatus == next {
		return false
	}
	c.ProfileStatus = next
	return true
}
