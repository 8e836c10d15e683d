package usecase

import (
	"context"
	"errors"
	"log"
	"net/mail"

	"github.com/google/uuid"
	"github.com/talentpulse/backend/internal/apperr"
	"github.com/talentpulse/backend/internal/dto"
	"github.com/talentpulse/backend/internal/model"
	"github.com/talentpulse/backend/internal/repository"
	"github.com/talentpulse/backend/internal/service"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type LoginResult struct {
	Token    string
	Identity *model.Identity
	Redirect string
}

type AuthUsecaseInterface interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Logout(ctx context.Context) string
	SignupCandidate(ctx context.Context, req dto.CandidateSignupRequest) (*model.Identity, error)
	SignupCompany(ctx context.Context, req dto.CompanySignupRequest) (*model.Identity, error)
	LoadIdentity(ctx context.Context, id uuid.UUID) (*model.Identity, error)
	ResendVerification(ctx context.Context, email string) error
}

type AuthUsecase struct {
	users      repository.UserRepository
	candidates repository.CandidateRepository
	companies  repository.CompanyRepository
	tokens     service.TokenServiceInterface
}

func NewAuthUsecase(
	users repository.UserRepository,
	candidates repository.CandidateRepository,
	companies repository.CompanyRepository,
	tokens service.TokenServiceInterface,
) *AuthUsecase {
	return &AuthUsecase{users: users, candidates: candidates, companies: companies, tokens: tokens}
}

// Login checks credentials, hydrates the role fragment and returns a token
// plus the role's home route. Failed logins leave no state behind.
func (uc *AuthUsecase) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	profile, err := uc.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Unauthorized("invalid email or password")
		}
		return nil, apperr.Transient("could not verify credentials", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(password)); err != nil {
		return nil, apperr.Unauthorized("invalid email or password")
	}

	identity, err := uc.LoadIdentity(ctx, profile.ID)
	if err != nil {
		return nil, err
	}

	token, err := uc.tokens.Generate(profile.ID, profile.Role)
	if err != nil {
		return nil, apperr.Transient("could not issue session token", err)
	}

	return &LoginResult{
		Token:    token,
		Identity: identity,
		Redirect: profile.Role.HomeRoute(),
	}, nil
}

// Logout returns the post-logout route. Tokens are stateless; the caller
// drops its copy and any per-request session store is torn down.
func (uc *AuthUsecase) Logout(ctx context.Context) string {
	return "/"
}

// LoadIdentity hydrates a base profile and its role fragment. A candidate
// profile whose candidates row is missing gets one created with the default
// incomplete stage, so callers never observe a candidate without a fragment.
func (uc *AuthUsecase) LoadIdentity(ctx context.Context, id uuid.UUID) (*model.Identity, error) {
	profile, err := uc.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("profile not found")
		}
		return nil, apperr.Transient("could not load profile", err)
	}

	identity := &model.Identity{
		ID:       profile.ID,
		Email:    profile.Email,
		FullName: profile.FullName,
		Role:     profile.Role,
	}

	switch profile.Role {
	case model.RoleCandidate:
		candidate, err := uc.candidates.FindByID(ctx, id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			candidate = &model.Candidate{
				ID:            profile.ID,
				FullName:      profile.FullName,
				Email:         profile.Email,
				ProfileStatus: model.StageIncomplete,
			}
			if err := uc.candidates.Create(ctx, candidate); err != nil {
				return nil, apperr.Transient("could not create candidate record", err)
			}
		} else if err != nil {
			return nil, apperr.Transient("could not load candidate record", err)
		}
		identity.Candidate = candidate.Details()
	case model.RoleCompany:
		company, err := uc.companies.FindByID(ctx, id)
		if err == nil {
			identity.Company = company.Details()
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Transient("could not load company record", err)
		}
	}

	return identity, nil
}

// SignupCandidate creates credentials, then the base profile, then the
// candidate fragment. The fragment insert is never attempted when the
// profile upsert fails.
func (uc *AuthUsecase) SignupCandidate(ctx context.Context, req dto.CandidateSignupRequest) (*model.Identity, error) {
	if err := validateSignup(req.Email, req.Password, req.AgreedToTerms, map[string]string{
		"fullName": req.FullName,
	}); err != nil {
		return nil, err
	}

	if _, err := uc.users.FindByEmail(ctx, req.Email); err == nil {
		return nil, apperr.Validation("email already registered", map[string]string{"email": "already registered"})
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Transient("could not check existing account", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Transient("could not hash password", err)
	}

	profile := &model.Profile{
		ID:           uuid.New(),
		Email:        req.Email,
		FullName:     req.FullName,
		Role:         model.RoleCandidate,
		PasswordHash: string(hash),
	}
	if err := uc.users.Upsert(ctx, profile); err != nil {
		return nil, apperr.Transient("could not create profile", err)
	}

	candidate := &model.Candidate{
		ID:            profile.ID,
		FullName:      req.FullName,
		Email:         req.Email,
		ProfileStatus: model.StageIncomplete,
	}
	if err := uc.candidates.Create(ctx, candidate); err != nil {
		return nil, apperr.Transient("could not create candidate record", err)
	}

	identity := &model.Identity{
		ID:        profile.ID,
		Email:     profile.Email,
		FullName:  profile.FullName,
		Role:      profile.Role,
		Candidate: candidate.Details(),
	}
	return identity, nil
}

// SignupCompany mirrors SignupCandidate with one inherited quirk: an email
// collision on the credential record is logged and the existing account is
// reused rather than failing the signup. The profile-before-fragment
// ordering still holds.
func (uc *AuthUsecase) SignupCompany(ctx context.Context, req dto.CompanySignupRequest) (*model.Identity, error) {
	if err := validateSignup(req.Email, req.Password, req.AgreedToTerms, map[string]string{
		"companyName": req.CompanyName,
		"contactName": req.ContactName,
	}); err != nil {
		return nil, err
	}

	id := uuid.New()
	passwordHash := ""
	existing, err := uc.users.FindByEmail(ctx, req.Email)
	if err == nil {
		log.Printf("company signup: account already exists for %s, reusing it", req.Email)
		id = existing.ID
		passwordHash = existing.PasswordHash
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Transient("could not check existing account", err)
	}

	if passwordHash == "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, apperr.Transient("could not hash password", err)
		}
		passwordHash = string(hash)
	}

	profile := &model.Profile{
		ID:           id,
		Email:        req.Email,
		FullName:     req.ContactName,
		Role:         model.RoleCompany,
		PasswordHash: passwordHash,
	}
	if err := uc.users.Upsert(ctx, profile); err != nil {
		return nil, apperr.Transient("could not create profile", err)
	}

	company := &model.Company{
		ID:               id,
		CompanyName:      req.CompanyName,
		ContactName:      req.ContactName,
		Industry:         req.Industry,
		Size:             req.Size,
		SubscriptionTier: model.TierBasic,
		Phone:            req.Phone,
		Website:          req.Website,
		Description:      req.Description,
	}
	if err := uc.companies.Create(ctx, company); err != nil {
		return nil, apperr.Transient("could not create company record", err)
	}

	identity := &model.Identity{
		ID:       profile.ID,
		Email:    profile.Email,
		FullName: profile.FullName,
		Role:     profile.Role,
		Company:  company.Details(),
	}
	return identity, nil
}

// ResendVerification re-requests the verification email. Delivery belongs to
// the mail collaborator; this only validates the account state.
func (uc *AuthUsecase) ResendVerification(ctx context.Context, email string) error {
	profile, err := uc.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("no account for that email")
		}
		return apperr.Transient("could not look up account", err)
	}
	if profile.EmailVerified {
		return apperr.Validation("email already verified", nil)
	}
	log.Printf("verification email requested for %s", profile.Email)
	return nil
}

func validateSignup(email, password string, agreed bool, required map[string]string) error {
	fields := map[string]string{}
	if _, err := mail.ParseAddress(email); err != nil {
		fields["email"] = "must be a valid email address"
	}
	if len(password) < 8 {
		fields["password"] = "must be at least 8 characters"
	}
	if !agreed {
		fields["agreedToTerms"] = "you must agree to the terms"
	}
	for name, value := range required {
		if value == "" {
			fields[name] = "is required"
		}
	}
	if len(fields) > 0 {
		return apperr.Validation("invalid signup details", fields)
	}
	return nil
}
