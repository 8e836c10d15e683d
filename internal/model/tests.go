package model

import (
	"time"

	"github.com/google/uuid"
)

// TestStatus is the admin-review state of a company test. Candidates only
// ever see approved tests.
type TestStatus string

const (
	TestPending  TestStatus = "pending"
	TestApproved TestStatus = "approved"
	TestRejected TestStatus = "rejected"
)

func (s TestStatus) Valid() bool {
	switch s {
	case TestPending, TestApproved, TestRejected:
		return true
	}
	return false
}

type QuestionType string

const (
	QuestionText           QuestionType = "text"
	QuestionMultipleChoice QuestionType = "multiple_choice"
	QuestionRating         QuestionType = "rating"
)

func (t QuestionType) Valid() bool {
	switch t {
	case QuestionText, QuestionMultipleChoice, QuestionRating:
		return true
	}
	return false
}

// CompanyTest is a company-authored assessment bound to one category. It
// requires admin approval before candidates may take it.
type CompanyTest struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	CompanyID   uuid.UUID  `gorm:"column:company_id;type:uuid" json:"company_id"`
	CategoryID  uuid.UUID  `gorm:"column:category_id;type:uuid" json:"category_id"`
	Category    Category   `gorm:"foreignKey:CategoryID" json:"-"`
	Title       string     `gorm:"type:varchar(200);not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Status      TestStatus `gorm:"type:varchar(20);default:pending" json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (CompanyTest) TableName() string {
	return "company_tests"
}

// TestQuestion belongs to one company test, ordered by OrderIndex. Uniqueness
// of the ordering is not enforced beyond the index value itself.
type TestQuestion struct {
	ID              uuid.UUID    `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	TestID          uuid.UUID    `gorm:"column:test_id;type:uuid" json:"test_id"`
	QuestionText    string       `gorm:"column:question_text;type:text;not null" json:"question_text"`
	QuestionType    QuestionType `gorm:"column:question_type;type:varchar(30)" json:"question_type"`
	ExpectedAnswer  string       `gorm:"column:expected_answer;type:text" json:"expected_answer"`
	ScoringCriteria string       `gorm:"column:scoring_criteria;type:text" json:"scoring_criteria"`
	OrderIndex      int          `gorm:"column:order_index" json:"order_index"`
	CreatedAt       time.Time    `json:"created_at"`
}

func (TestQuestion) TableName() string {
	return "test_questions"
}
