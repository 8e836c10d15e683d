package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/talentpulse/backend/internal/model"
	"github.com/talentpulse/backend/internal/service"
)

type TestQuestion struct {
	ID              uuid.UUID `json:"id"`
	TestID          uuid.UUID `json:"testId"`
	QuestionText    string    `json:"questionText"`
	QuestionType    string    `json:"questionType"`
	ExpectedAnswer  string    `json:"expectedAnswer,omitempty"`
	ScoringCriteria string    `json:"scoringCriteria,omitempty"`
	OrderIndex      int       `json:"orderIndex"`
}

type CompanyTest struct {
	ID           uuid.UUID      `json:"id"`
	CompanyID    uuid.UUID      `json:"companyId"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	CategoryID   uuid.UUID      `json:"categoryId"`
	CategoryName string         `json:"categoryName"`
	Status       string         `json:"status"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	Questions    []TestQuestion `json:"questions,omitempty"`
}

func TestFromModel(m model.CompanyTest) CompanyTest {
	return CompanyTest{
		ID:           m.ID,
		CompanyID:    m.CompanyID,
		Title:        m.Title,
		Description:  m.Description,
		CategoryID:   m.CategoryID,
		CategoryName: m.Category.Name,
		Status:       string(m.Status),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func QuestionFromModel(m model.TestQuestion) TestQuestion {
	return TestQuestion{
		ID:              m.ID,
		TestID:          m.TestID,
		QuestionText:    m.QuestionText,
		QuestionType:    string(m.QuestionType),
		ExpectedAnswer:  m.ExpectedAnswer,
		ScoringCriteria: m.ScoringCriteria,
		OrderIndex:      m.OrderIndex,
	}
}

// CandidateQuestionFromModel omits the expected answer and scoring criteria,
// which candidates must never see.
func CandidateQuestionFromModel(m model.TestQuestion) TestQuestion {
	q := QuestionFromModel(m)
	q.ExpectedAnswer = ""
	q.ScoringCriteria = ""
	return q
}

type CreateTestRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CategoryID  uuid.UUID `json:"categoryId"`
}

type QuestionInput struct {
	QuestionText    string `json:"questionText"`
	QuestionType    string `json:"questionType"`
	ExpectedAnswer  string `json:"expectedAnswer"`
	ScoringCriteria string `json:"scoringCriteria"`
	OrderIndex      int    `json:"orderIndex"`
}

type AddQuestionsRequest struct {
	Questions []QuestionInput `json:"questions"`
}

type ReviewTestRequest struct {
	Decision string `json:"decision"`
}

type SubmitTestRequest struct {
	TestID  uuid.UUID            `json:"testId"`
	Answers []service.TestAnswer `json:"answers"`
}
