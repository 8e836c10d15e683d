package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// TalentPack is a purchasable, criteria-filtered bundle of candidate
// profiles. Each pack belongs to exactly one category.
type TalentPack struct {
	ID                uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name              string         `gorm:"type:varchar(150);not null" json:"name"`
	Description       string         `gorm:"type:text" json:"description"`
	CategoryID        uuid.UUID      `gorm:"column:category_id;type:uuid" json:"category_id"`
	Category          Category       `gorm:"foreignKey:CategoryID" json:"-"`
	Price             float64        `gorm:"type:numeric(10,2)" json:"price"`
	CandidateCount    int            `gorm:"column:candidate_count" json:"candidate_count"`
	MinimumScore      float64        `gorm:"column:minimum_score" json:"minimum_score"`
	MinimumExperience float64        `gorm:"column:minimum_experience" json:"minimum_experience"`
	RequiredSkills    pq.StringArray `gorm:"column:required_skills;type:text[]" json:"required_skills"`
	EducationLevel    string         `gorm:"column:education_level;type:varchar(100)" json:"education_level"`
	OtherCriteria     pq.StringArray `gorm:"column:other_criteria;type:text[]" json:"other_criteria"`
	AverageScore      float64        `gorm:"column:average_score" json:"average_score"`
	AverageExperience float64        `gorm:"column:average_experience" json:"average_experience"`
	IsFeatured        bool           `gorm:"column:is_featured" json:"is_featured"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

func (TalentPack) TableName() string {
	return "talent_packs"
}
