package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/talentpulse/backend/internal/dto"
	"github.com/talentpulse/backend/internal/middleware"
	"github.com/talentpulse/backend/internal/usecase"
	"github.com/talentpulse/backend/internal/util"
)

type AuthHandler struct {
	uc usecase.AuthUsecaseInterface
}

func NewAuthHandler(uc usecase.AuthUsecaseInterface) *AuthHandler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/login", h.Login)
	router.Post("/logout", h.Logout)
	router.Post("/signup/candidate", h.SignupCandidate)
	router.Post("/signup/company", h.SignupCompany)
	router.Post("/resend-verification", h.ResendVerification)
	router.Get("/session", h.Session)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}

	result, err := h.uc.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return util.FromError(c, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "signed in",
		Data: dto.LoginResponse{
			Token:    result.Token,
			Redirect: result.Redirect,
			User:     dto.IdentityFromModel(result.Identity),
		},
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	redirect := h.uc.Logout(c.UserContext())
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "signed out",
		Data:    fiber.Map{"redirect": redirect},
	})
}

func (h *AuthHandler) SignupCandidate(c *fiber.Ctx) error {
	var req dto.CandidateSignupRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}

	identity, err := h.uc.SignupCandidate(c.UserContext(), req)
	if err != nil {
		return util.FromError(c, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "account created",
		Data:    dto.IdentityFromModel(identity),
	})
}

func (h *AuthHandler) SignupCompany(c *fiber.Ctx) error {
	var req dto.CompanySignupRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}

	identity, err := h.uc.SignupCompany(c.UserContext(), req)
	if err != nil {
		return util.FromError(c, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "account created",
		Data:    dto.IdentityFromModel(identity),
	})
}

func (h *AuthHandler) ResendVerification(c *fiber.Ctx) error {
	var req dto.ResendVerificationRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}

	if err := h.uc.ResendVerification(c.UserContext(), req.Email); err != nil {
		return util.FromError(c, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "verification email requested",
	})
}

// Session reflects the caller's current session snapshot, including the
// loading flag, so clients can render placeholders instead of redirecting.
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	snap := middleware.Session(c)

	data := fiber.Map{
		"isAuthenticated": snap.IsAuthenticated,
		"isLoading":       snap.IsLoading,
	}
	if snap.Identity != nil {
		data["user"] = dto.IdentityFromModel(snap.Identity)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "session",
		Data:    data,
	})
}
