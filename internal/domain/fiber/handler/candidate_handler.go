package handler

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/talentpulse/backend/internal/dto"
	"github.com/talentpulse/backend/internal/middleware"
	"github.com/talentpulse/backend/internal/usecase"
	"github.com/talentpulse/backend/internal/util"
)

type CandidateHandler struct {
	uc usecase.CandidateUsecaseInterface
}

func NewCandidateHandler(uc usecase.CandidateUsecaseInterface) *CandidateHandler {
	return &CandidateHandler{uc: uc}
}

func (h *CandidateHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/dashboard", h.Dashboard)
	router.Post("/cv", h.UploadCV)
	router.Post("/cv/extract", h.ExtractCV)
	router.Post("/profile/verify", h.VerifyProfile)
	router.Get("/test", h.AvailableTest)
	router.Post("/test/submit", h.SubmitTest)
}

func (h *CandidateHandler) Dashboard(c *fiber.Ctx) error {
	snap := middleware.Session(c)
	dashboard, err := h.uc.Dashboard(c.UserContext(), snap.Identity.ID)
	if err != nil {
		return util.FromError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "dashboard",
		Data:    dashboard,
	})
}

func (h *CandidateHandler) UploadCV(c *fiber.Ctx) error {
	snap := middleware.Session(c)

	file, err := c.FormFile("cv")
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "cv file is required",
		}, err)
	}

	src, err := file.Open()
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "could not read uploaded file",
		}, err)
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, usecase.MaxCVSize+1))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "could not read uploaded file",
		}, err)
	}

	result, err := h.uc.UploadCV(c.UserContext(), snap.Identity.ID, file.Filename, data)
	if err != nil {
		return util.FromError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "cv uploaded",
		Data:    result,
	})
}

func (h *CandidateHandler) ExtractCV(c *fiber.Ctx) error {
	snap := middleware.Session(c)
	extracted, err := h.uc.ExtractCV(c.UserContext(), snap.Identity.ID)
	if err != nil {
		return util.FromError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "cv extracted",
		Data:    extracted,
	})
}

func (h *CandidateHandler) VerifyProfile(c *fiber.Ctx) error {
	snap := middleware.Session(c)

	var req dto.VerifyProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}

	dashboard, err := h.uc.VerifyProfile(c.UserContext(), snap.Identity.ID, req)
	if err != nil {
		return util.FromError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "profile verified",
		Data:    dashboard,
	})
}

func (h *CandidateHandler) AvailableTest(c *fiber.Ctx) error {
	snap := middleware.Session(c)
	test, err := h.uc.AvailableTest(c.UserContext(), snap.Identity.ID)
	if err != nil {
		return util.FromError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "available test",
		Data:    test,
	})
}

func (h *CandidateHandler) SubmitTest(c *fiber.Ctx) error {
	snap := middleware.Session(c)

	var req dto.SubmitTestRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}

	dashboard, err := h.uc.SubmitTest(c.UserContext(), snap.Identity.ID, req)
	if err != nil {
		return util.FromError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "test submitted",
		Data:    dashboard,
	})
}
