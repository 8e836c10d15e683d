package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/talentpulse/backend/internal/apperr"
	"github.com/talentpulse/backend/internal/dto"
	"github.com/talentpulse/backend/internal/model"
	"github.com/talentpulse/backend/internal/service"
)

func newCandidateUsecase(candidates *stubCandidateRepo, tests *stubTestRepo, scorer *stubScorer) *CandidateUsecase {
	return NewCandidateUsecase(&stubUserRepo{}, candidates, tests, &stubStorage{}, &stubExtractor{}, scorer)
}

func candidateAt(stage model.ProfileStage) *stubCandidateRepo {
	return &stubCandidateRepo{
		findByID: func(id uuid.UUID) (*model.Candidate, error) {
			return &model.Candidate{
				ID:            id,
				FullName:      "Ada",
				Category:      "Engineering",
				ProfileStatus: stage,
			}, nil
		},
	}
}

func TestDashboard_NextActionFollowsStage(t *testing.T) {
	cases := []struct {
		stage model.ProfileStage
		want  string
	}{
		{model.StageIncomplete, "upload_cv"},
		{model.StageCVUploaded, "verify_data"},
		{model.StageDataVerified, "take_test"},
		{model.StageTestCompleted, "awaiting_score"},
		{model.StageComplete, "none"},
	}
	for _, tc := range cases {
		uc := newCandidateUsecase(candidateAt(tc.stage), &stubTestRepo{}, &stubScorer{})
		dash, err := uc.Dashboard(context.Background(), uuid.New())
		if err != nil {
			t.Fatalf("%s: dashboard failed: %v", tc.stage, err)
		}
		if dash.NextAction != tc.want {
			t.Errorf("%s: nextAction = %q, want %q", tc.stage, dash.NextAction, tc.want)
		}
	}
}

func TestUploadCV_RejectsEmptyAndOversized(t *testing.T) {
	uc := newCandidateUsecase(candidateAt(model.StageIncomplete), &stubTestRepo{}, &stubScorer{})

	if _, err := uc.UploadCV(context.Background(), uuid.New(), "cv.pdf", nil); apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("empty upload: expected validation error, got %v", err)
	}
	big := make([]byte, MaxCVSize+1)
	if _, err := uc.UploadCV(context.Background(), uuid.New(), "cv.pdf", big); apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("oversized upload: expected validation error, got %v", err)
	}
}

// minimalPDF assembles a one-page PDF with a correct xref table so the
// upload validation accepts it.
func minimalPDF() []byte {
	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, 4)
	write := func(i int, s string) {
		offsets[i] = buf.Len()
		buf.WriteString(s)
	}
	write(1, "1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")
	write(2, "2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n")
	write(3, "3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] >>\nendobj\n")
	xref := buf.Len()
	buf.WriteString("xref\n0 4\n0000000000 65535 f \n")
	for i := 1; i <= 3; i++ {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offsets[i])
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size 4 /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", xref)
	return buf.Bytes()
}

func TestUploadCV_StorageFailureLeavesRowUntouched(t *testing.T) {
	userID := uuid.New()
	users := &stubUserRepo{
		findByID: func(id uuid.UUID) (*model.Profile, error) {
			return &model.Profile{ID: userID, FullName: "Ada", Email: "ada@b.com", Role: model.RoleCandidate}, nil
		},
	}
	candidates := candidateAt(model.StageIncomplete)
	storage := &stubStorage{
		storeCV: func(id uuid.UUID, filename string, data []byte) (string, error) {
			return "", errors.New("bucket unavailable")
		},
	}
	uc := NewCandidateUsecase(users, candidates, &stubTestRepo{}, storage, &stubExtractor{}, &stubScorer{})

	_, err := uc.UploadCV(context.Background(), userID, "cv.pdf", minimalPDF())
	if apperr.KindOf(err) != apperr.KindTransient {
		t.Fatalf("expected transient error, got %v", err)
	}
	if candidates.createCalls != 0 || candidates.updateCalls != 0 {
		t.Errorf("candidate writes = %d create / %d update, want none on storage failure",
			candidates.createCalls, candidates.updateCalls)
	}
}

func TestVerifyProfile_AdvancesToDataVerified(t *testing.T) {
	var saved *model.Candidate
	candidates := candidateAt(model.StageCVUploaded)
	candidates.update = func(c *model.Candidate) error {
		saved = c
		return nil
	}
	uc := newCandidateUsecase(candidates, &stubTestRepo{}, &stubScorer{})

	_, err := uc.VerifyProfile(context.Background(), uuid.New(), dto.VerifyProfileRequest{
		FullName: "Ada Lovelace", Category: "Engineering",
	})
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if saved == nil || saved.ProfileStatus != model.StageDataVerified {
		t.Errorf("expected saved stage data_verified, got %+v", saved)
	}
}

func TestVerifyProfile_RequiresUploadedCV(t *testing.T) {
	uc := newCandidateUsecase(candidateAt(model.StageIncomplete), &stubTestRepo{}, &stubScorer{})

	_, err := uc.VerifyProfile(context.Background(), uuid.New(), dto.VerifyProfileRequest{
		FullName: "Ada", Category: "Engineering",
	})
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("expected validation error before cv upload, got %v", err)
	}
}

func TestAvailableTest_StripsExpectedAnswers(t *testing.T) {
	testID := uuid.New()
	tests := &stubTestRepo{
		findApprovedByCategoryName: func(category string) (*model.CompanyTest, error) {
			return &model.CompanyTest{ID: testID, Title: "Credibility", Status: model.TestApproved}, nil
		},
		listQuestions: func(id uuid.UUID) ([]model.TestQuestion, error) {
			return []model.TestQuestion{
				{ID: uuid.New(), TestID: testID, QuestionText: "Q1", ExpectedAnswer: "secret", ScoringCriteria: "exact", OrderIndex: 1},
				{ID: uuid.New(), TestID: testID, QuestionText: "Q2", ExpectedAnswer: "secret2", OrderIndex: 2},
			}, nil
		},
	}
	uc := newCandidateUsecase(candidateAt(model.StageDataVerified), tests, &stubScorer{})

	out, err := uc.AvailableTest(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("available test failed: %v", err)
	}
	if len(out.Questions) != 2 {
		t.Fatalf("question count = %d, want 2", len(out.Questions))
	}
	for _, q := range out.Questions {
		if q.ExpectedAnswer != "" || q.ScoringCriteria != "" {
			t.Errorf("question %q leaked expected answer or criteria", q.QuestionText)
		}
	}
}

func TestSubmitTest_RequiresDataVerified(t *testing.T) {
	scorer := &stubScorer{}
	uc := newCandidateUsecase(candidateAt(model.StageCVUploaded), &stubTestRepo{}, scorer)

	_, err := uc.SubmitTest(context.Background(), uuid.New(), dto.SubmitTestRequest{
		TestID:  uuid.New(),
		Answers: []service.TestAnswer{{QuestionID: uuid.New(), Answer: "42"}},
	})
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("expected validation error before data_verified, got %v", err)
	}
	if scorer.scoreCalls != 0 {
		t.Errorf("scorer calls = %d, want 0", scorer.scoreCalls)
	}
}

func TestSubmitTest_ScorerFailureLeavesRowUntouched(t *testing.T) {
	testID := uuid.New()
	candidates := candidateAt(model.StageDataVerified)
	tests := &stubTestRepo{
		findByID: func(id uuid.UUID) (*model.CompanyTest, error) {
			return &model.CompanyTest{ID: testID, Status: model.TestApproved}, nil
		},
	}
	scorer := &stubScorer{
		score: func(candidateID, tid uuid.UUID, answers []service.TestAnswer) (float64, error) {
			return 0, errors.New("scorer down")
		},
	}
	uc := newCandidateUsecase(candidates, tests, scorer)

	_, err := uc.SubmitTest(context.Background(), uuid.New(), dto.SubmitTestRequest{
		TestID:  testID,
		Answers: []service.TestAnswer{{QuestionID: uuid.New(), Answer: "42"}},
	})
	if apperr.KindOf(err) != apperr.KindTransient {
		t.Fatalf("expected transient error, got %v", err)
	}
	if candidates.updateCalls != 0 {
		t.Errorf("candidate update calls = %d, want 0 on scorer failure", candidates.updateCalls)
	}
}

func TestSubmitTest_RecordsScoreAndCompletes(t *testing.T) {
	testID := uuid.New()
	var saved *model.Candidate
	candidates := candidateAt(model.StageDataVerified)
	candidates.update = func(c *model.Candidate) error {
		copied := *c
		saved = &copied
		return nil
	}
	tests := &stubTestRepo{
		findByID: func(id uuid.UUID) (*model.CompanyTest, error) {
			return &model.CompanyTest{ID: testID, Status: model.TestApproved}, nil
		},
	}
	scorer := &stubScorer{
		score: func(candidateID, tid uuid.UUID, answers []service.TestAnswer) (float64, error) {
			return 87.5, nil
		},
	}
	uc := newCandidateUsecase(candidates, tests, scorer)

	_, err := uc.SubmitTest(context.Background(), uuid.New(), dto.SubmitTestRequest{
		TestID:  testID,
		Answers: []service.TestAnswer{{QuestionID: uuid.New(), Answer: "42"}},
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if saved == nil {
		t.Fatal("expected candidate row write")
	}
	// The scorer answers synchronously, so submission lands on complete with
	// the score attached in the same write.
	if saved.ProfileStatus != model.StageComplete {
		t.Errorf("stage = %q, want complete", saved.ProfileStatus)
	}
	if !saved.ProfileStatus.Milestones().Scored {
		t.Error("expected the scored milestone after submission")
	}
	if saved.OverallScore == nil || *saved.OverallScore != 87.5 {
		t.Errorf("overall score = %v, want 87.5", saved.OverallScore)
	}
	if !saved.CredibilityTestTaken || saved.LastTested == nil {
		t.Error("expected credibility flags set")
	}
}

func TestSubmitTest_RejectsUnapprovedTest(t *testing.T) {
	testID := uuid.New()
	tests := &stubTestRepo{
		findByID: func(id uuid.UUID) (*model.CompanyTest, error) {
			return &model.CompanyTest{ID: testID, Status: model.TestPending}, nil
		},
	}
	scorer := &stubScorer{}
	uc := newCandidateUsecase(candidateAt(model.StageDataVerified), tests, scorer)

	_, err := uc.SubmitTest(context.Background(), uuid.New(), dto.SubmitTestRequest{
		TestID:  testID,
		Answers: []service.TestAnswer{{QuestionID: uuid.New(), Answer: "42"}},
	})
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("expected validation error for pending test, got %v", err)
	}
	if scorer.scoreCalls != 0 {
		t.Errorf("scorer calls = %d, want 0", scorer.scoreCalls)
	}
}

func TestConfirmScore_MovesTestCompletedToComplete(t *testing.T) {
	score := 91.0
	var saved *model.Candidate
	candidates := &stubCandidateRepo{
		findByID: func(id uuid.UUID) (*model.Candidate, error) {
			return &model.Candidate{ID: id, ProfileStatus: model.StageTestCompleted, OverallScore: &score}, nil
		},
		update: func(c *model.Candidate) error {
			saved = c
			return nil
		},
	}
	uc := newCandidateUsecase(candidates, &stubTestRepo{}, &stubScorer{})

	_, err := uc.ConfirmScore(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if saved == nil || saved.ProfileStatus != model.StageComplete {
		t.Errorf("expected stage complete after confirmation, got %+v", saved)
	}
}

func TestConfirmScore_RejectsWrongStage(t *testing.T) {
	uc := newCandidateUsecase(candidateAt(model.StageDataVerified), &stubTestRepo{}, &stubScorer{})

	_, err := uc.ConfirmScore(context.Background(), uuid.New())
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}
