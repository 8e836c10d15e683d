package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/talentpulse/backend/internal/apperr"
	"github.com/talentpulse/backend/internal/dto"
	"github.com/talentpulse/backend/internal/model"
	"github.com/talentpulse/backend/internal/repository"
	"github.com/talentpulse/backend/internal/service"
	"github.com/talentpulse/backend/internal/util"
	"gorm.io/gorm"
)

// MaxCVSize caps CV uploads at 5 MB.
const MaxCVSize = 5 * 1024 * 1024

type CandidateUsecaseInterface interface {
	Dashboard(ctx context.Context, userID uuid.UUID) (*dto.CandidateDashboard, error)
	UploadCV(ctx context.Context, userID uuid.UUID, filename string, data []byte) (*dto.CVUploadResponse, error)
	ExtractCV(ctx context.Context, userID uuid.UUID) (*service.ExtractedProfile, error)
	VerifyProfile(ctx context.Context, userID uuid.UUID, req dto.VerifyProfileRequest) (*dto.CandidateDashboard, error)
	AvailableTest(ctx context.Context, userID uuid.UUID) (*dto.CompanyTest, error)
	SubmitTest(ctx context.Context, userID uuid.UUID, req dto.SubmitTestRequest) (*dto.CandidateDashboard, error)
	ConfirmScore(ctx context.Context, candidateID uuid.UUID) (*dto.CandidateDashboard, error)
}

type CandidateUsecase struct {
	users      repository.UserRepository
	candidates repository.CandidateRepository
	tests      repository.TestRepository
	storage    service.StorageServiceInterface
	extractor  service.ExtractorServiceInterface
	scorer     service.ScorerServiceInterface
}

func NewCandidateUsecase(
	users repository.UserRepository,
	candidates repository.CandidateRepository,
	tests repository.TestRepository,
	storage service.StorageServiceInterface,
	extractor service.ExtractorServiceInterface,
	scorer service.ScorerServiceInterface,
) *CandidateUsecase {
	return &CandidateUsecase{
		users:      users,
		candidates: candidates,
		tests:      tests,
		storage:    storage,
		extractor:  extractor,
		scorer:     scorer,
	}
}

func (uc *CandidateUsecase) Dashboard(ctx context.Context, userID uuid.UUID) (*dto.CandidateDashboard, error) {
	candidate, err := uc.findCandidate(ctx, userID)
	if err != nil {
		return nil, err
	}
	dashboard := dto.DashboardFromCandidate(candidate)
	return &dashboard, nil
}

// UploadCV validates and stores the CV binary, then advances the candidate
// to cv_uploaded. The stage only moves after the storage write and the row
// update both succeed.
func (uc *CandidateUsecase) UploadCV(ctx context.Context, userID uuid.UUID, filename string, data []byte) (*dto.CVUploadResponse, error) {
	if len(data) == 0 {
		return nil, apperr.Validation("cv file is required", map[string]string{"cv": "is required"})
	}
	if len(data) > MaxCVSize {
		return nil, apperr.Validation("cv file is too large (max 5MB)", map[string]string{"cv": "must be 5MB or smaller"})
	}
	if err := util.ValidateCVPDF(data); err != nil {
		return nil, apperr.Validation("cv must be a readable PDF", map[string]string{"cv": err.Error()})
	}

	// The base profile must exist before a candidate row may be written.
	profile, err := uc.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user profile not found")
		}
		return nil, apperr.Transient("could not load profile", err)
	}

	publicURL, err := uc.storage.StoreCV(userID, filename, data)
	if err != nil {
		return nil, apperr.Transient("could not store CV", err)
	}

	candidate, err := uc.candidates.FindByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		candidate = &model.Candidate{
			ID:            userID,
			FullName:      profile.FullName,
			Email:         profile.Email,
			CVURL:         publicURL,
			ProfileStatus: model.StageCVUploaded,
		}
		if err := uc.candidates.Create(ctx, candidate); err != nil {
			return nil, apperr.Transient("could not create candidate record", err)
		}
	} else if err != nil {
		return nil, apperr.Transient("could not load candidate record", err)
	} else {
		candidate.CVURL = publicURL
		candidate.AdvanceTo(model.StageCVUploaded)
		if err := uc.candidates.Update(ctx, candidate); err != nil {
			return nil, apperr.Transient("could not update candidate record", err)
		}
	}

	// Read-after-write: return the server-confirmed row, not local state.
	refreshed, err := uc.findCandidate(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &dto.CVUploadResponse{
		CVURL:         refreshed.CVURL,
		ProfileStatus: string(refreshed.ProfileStatus),
	}, nil
}

func (uc *CandidateUsecase) ExtractCV(ctx context.Context, userID uuid.UUID) (*service.ExtractedProfile, error) {
	candidate, err := uc.findCandidate(ctx, userID)
	if err != nil {
		return nil, err
	}
	if candidate.CVURL == "" {
		return nil, apperr.Validation("upload a CV before requesting extraction", nil)
	}
	extracted, err := uc.extractor.Extract(ctx, candidate.CVURL)
	if err != nil {
		return nil, apperr.Transient("CV extraction failed", err)
	}
	return extracted, nil
}

// VerifyProfile saves the candidate's confirmed details and advances the
// stage to data_verified.
func (uc *CandidateUsecase) VerifyProfile(ctx context.Context, userID uuid.UUID, req dto.VerifyProfileRequest) (*dto.CandidateDashboard, error) {
	fields := map[string]string{}
	if req.FullName == "" {
		fields["fullName"] = "is required"
	}
	if req.Category == "" {
		fields["category"] = "is required"
	}
	if len(fields) > 0 {
		return nil, apperr.Validation("invalid profile details", fields)
	}

	candidate, err := uc.findCandidate(ctx, userID)
	if err != nil {
		return nil, err
	}
	if candidate.ProfileStatus == model.StageIncomplete {
		return nil, apperr.Validation("upload a CV before verifying your data", nil)
	}

	candidate.FullName = req.FullName
	candidate.Category = req.Category
	candidate.AdvanceTo(model.StageDataVerified)
	if err := uc.candidates.Update(ctx, candidate); err != nil {
		return nil, apperr.Transient("could not save verified data", err)
	}

	return uc.Dashboard(ctx, userID)
}

// AvailableTest returns the approved test for the candidate's category with
// its questions in order, expected answers stripped.
func (uc *CandidateUsecase) AvailableTest(ctx context.Context, userID uuid.UUID) (*dto.CompanyTest, error) {
	candidate, err := uc.findCandidate(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !candidate.ProfileStatus.Milestones().DataVerified {
		return nil, apperr.Validation("verify your profile data before taking the test", nil)
	}
	if candidate.Category == "" {
		return nil, apperr.Validation("select a category before taking the test", nil)
	}

	test, err := uc.tests.FindApprovedByCategoryName(ctx, candidate.Category)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("no approved test for your category yet")
		}
		return nil, apperr.Transient("could not load test", err)
	}

	questions, err := uc.tests.ListQuestions(ctx, test.ID)
	if err != nil {
		return nil, apperr.Transient("could not load test questions", err)
	}

	out := dto.TestFromModel(*test)
	for _, q := range questions {
		out.Questions = append(out.Questions, dto.CandidateQuestionFromModel(q))
	}
	return &out, nil
}

// SubmitTest forwards the answers to the external scorer and, only once a
// score comes back, records it and advances the stage to complete. The scorer
// answers synchronously, so the score is attached in the same write. A scorer
// failure leaves the candidate row untouched.
func (uc *CandidateUsecase) SubmitTest(ctx context.Context, userID uuid.UUID, req dto.SubmitTestRequest) (*dto.CandidateDashboard, error) {
	if len(req.Answers) == 0 {
		return nil, apperr.Validation("answers are required", nil)
	}

	candidate, err := uc.findCandidate(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !candidate.ProfileStatus.Milestones().DataVerified {
		return nil, apperr.Validation("verify your profile data before taking the test", nil)
	}

	test, err := uc.tests.FindByID(ctx, req.TestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("test not found")
		}
		return nil, apperr.Transient("could not load test", err)
	}
	if test.Status != model.TestApproved {
		return nil, apperr.Validation("this test is not open to candidates", nil)
	}

	score, err := uc.scorer.Score(ctx, userID, test.ID, req.Answers)
	if err != nil {
		return nil, apperr.Transient("scoring failed, please try again later", err)
	}

	now := time.Now()
	candidate.OverallScore = &score
	candidate.CredibilityTestTaken = true
	candidate.LastTested = &now
	candidate.AdvanceTo(model.StageComplete)
	if err := uc.candidates.Update(ctx, candidate); err != nil {
		return nil, apperr.Transient("could not record test result", err)
	}

	return uc.Dashboard(ctx, userID)
}

// ConfirmScore is an administrative override for rows stuck at
// test_completed with a recorded score (submission normally lands on
// complete directly). It publishes the score by moving the row to complete.
func (uc *CandidateUsecase) ConfirmScore(ctx context.Context, candidateID uuid.UUID) (*dto.CandidateDashboard, error) {
	candidate, err := uc.findCandidate(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	if candidate.ProfileStatus != model.StageTestCompleted {
		return nil, apperr.Validation("no score awaiting confirmation", nil)
	}
	if candidate.OverallScore == nil {
		return nil, apperr.Validation("candidate has no recorded score", nil)
	}

	candidate.AdvanceTo(model.StageComplete)
	if err := uc.candidates.Update(ctx, candidate); err != nil {
		return nil, apperr.Transient("could not confirm score", err)
	}

	return uc.Dashboard(ctx, candidateID)
}

func (uc *CandidateUsecase) findCandidate(ctx context.Context, id uuid.UUID) (*model.Candidate, error) {
	candidate, err := uc.candidates.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("candidate profile not found")
		}
		return nil, apperr.Transient("could not load candidate record", err)
	}
	return candidate, nil
}
