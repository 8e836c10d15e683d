package service

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/talentpulse/backend/internal/config"
	"github.com/tidwall/gjson"
)

// TestAnswer is one submitted answer forwarded to the external scorer.
type TestAnswer struct {
	QuestionID uuid.UUID `json:"questionId"`
	Answer     string    `json:"answer"`
}

// ScorerServiceInterface scores a credibility-test submission. The scoring
// algorithm lives entirely in the external service; no scoring math exists
// in this module.
type ScorerServiceInterface interface {
	Score(ctx context.Context, candidateID, testID uuid.UUID, answers []TestAnswer) (float64, error)
}

type ScorerService struct {
	client  *resty.Client
	baseURL string
}

func NewScorerService() *ScorerService {
	cfg := config.LoadScorerConfig()
	client := resty.New()
	if cfg.APIKey != "" {
		client.SetAuthToken(cfg.APIKey)
	}
	return &ScorerService{client: client, baseURL: cfg.BaseURL}
}

func (s *ScorerService) Score(ctx context.Context, candidateID, testID uuid.UUID, answers []TestAnswer) (float64, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{
			"candidate_id": candidateID,
			"test_id":      testID,
			"answers":      answers,
		}).
		Post(s.baseURL + "/score")
	if err != nil {
		return 0, fmt.Errorf("scorer request failed: %w", err)
	}
	if resp.IsError() {
		return 0, fmt.Errorf("scorer returned status %d: %s", resp.StatusCode(), resp.String())
	}

	result := gjson.Get(resp.String(), "overall_score")
	if !result.Exists() {
		return 0, fmt.Errorf("scorer response missing overall_score")
	}
	score := result.Float()
	if score < 0 || score > 100 {
		return 0, fmt.Errorf("scorer returned out-of-range score %.2f", score)
	}
	return score, nil
}
