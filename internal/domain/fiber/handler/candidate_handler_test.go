package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/talentpulse/backend/internal/middleware"
	"github.com/talentpulse/backend/internal/model"
	"github.com/talentpulse/backend/internal/session"
	"github.com/talentpulse/backend/internal/usecase"
)

type fixedCandidateRepo struct {
	candidate *model.Candidate
}

func (r *fixedCandidateRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Candidate, error) {
	return r.candidate, nil
}

func (r *fixedCandidateRepo) Create(_ context.Context, candidate *model.Candidate) error {
	return nil
}

func (r *fixedCandidateRepo) Update(_ context.Context, candidate *model.Candidate) error {
	return nil
}

func (r *fixedCandidateRepo) Count(_ context.Context) (int64, error) { return 1, nil }

func (r *fixedCandidateRepo) CountSince(_ context.Context, since time.Time) (int64, error) {
	return 0, nil
}

func newDashboardApp(candidate *model.Candidate) *fiber.App {
	uc := usecase.NewCandidateUsecase(nil, &fixedCandidateRepo{candidate: candidate}, nil, nil, nil, nil)
	h := NewCandidateHandler(uc)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(middleware.SessionKey, session.Snapshot{
			Identity:        &model.Identity{ID: candidate.ID, Role: model.RoleCandidate},
			IsAuthenticated: true,
		})
		return c.Next()
	})
	h.RegisterRoutes(app.Group("/candidate"))
	return app
}

func TestDashboardRoute_DataVerifiedShowsTakeTest(t *testing.T) {
	candidate := &model.Candidate{
		ID:            uuid.New(),
		FullName:      "Ada",
		Category:      "Engineering",
		ProfileStatus: model.StageDataVerified,
	}
	app := newDashboardApp(candidate)

	resp, err := app.Test(httptest.NewRequest("GET", "/candidate/dashboard", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	var envelope struct {
		Success bool `json:"success"`
		Data    struct {
			ProfileStatus string `json:"profileStatus"`
			NextAction    string `json:"nextAction"`
			Milestones    struct {
				CVUploaded    bool `json:"cvUploaded"`
				DataVerified  bool `json:"dataVerified"`
				TestCompleted bool `json:"testCompleted"`
				Scored        bool `json:"scored"`
			} `json:"milestones"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		t.Fatalf("bad response body: %v", err)
	}

	if !envelope.Success {
		t.Error("expected success envelope")
	}
	if envelope.Data.ProfileStatus != "data_verified" {
		t.Errorf("profileStatus = %q, want data_verified", envelope.Data.ProfileStatus)
	}
	if envelope.Data.NextAction != "take_test" {
		t.Errorf("nextAction = %q, want take_test", envelope.Data.NextAction)
	}
	m := envelope.Data.Milestones
	if !m.CVUploaded || !m.DataVerified || m.TestCompleted || m.Scored {
		t.Errorf("milestones = %+v, want cvUploaded and dataVerified only", m)
	}
}

func TestDashboardRoute_CompleteShowsNoAction(t *testing.T) {
	score := 92.0
	candidate := &model.Candidate{
		ID:            uuid.New(),
		FullName:      "Ada",
		ProfileStatus: model.StageComplete,
		OverallScore:  &score,
	}
	app := newDashboardApp(candidate)

	resp, err := app.Test(httptest.NewRequest("GET", "/candidate/dashboard", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	var envelope struct {
		Data struct {
			NextAction   string   `json:"nextAction"`
			OverallScore *float64 `json:"overallScore"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if envelope.Data.NextAction != "none" {
		t.Errorf("nextAction = %q, want none", envelope.Data.NextAction)
	}
	if envelope.Data.OverallScore == nil || *envelope.Data.OverallScore != 92.0 {
		t.Errorf("overallScore = %v, want 92", envelope.Data.OverallScore)
	}
}
