package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/talentpulse/backend/internal/dto"
	"github.com/talentpulse/backend/internal/model"
	"github.com/talentpulse/backend/internal/usecase"
	"github.com/talentpulse/backend/internal/util"
)

type AdminHandler struct {
	marketplace usecase.MarketplaceUsecaseInterface
	tests       usecase.TestsUsecaseInterface
	candidates  usecase.CandidateUsecaseInterface
}

func NewAdminHandler(
	marketplace usecase.MarketplaceUsecaseInterface,
	tests usecase.TestsUsecaseInterface,
	candidates usecase.CandidateUsecaseInterface,
) *AdminHandler {
	return &AdminHandler{marketplace: marketplace, tests: tests, candidates: candidates}
}

func (h *AdminHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/dashboard", h.Dashboard)
	router.Get("/users", h.ListUsers)
	router.Get("/tests", h.ListTests)
	router.Get("/tests/:id", h.GetTest)
	router.Post("/tests/:id/review", h.ReviewTest)
	router.Post("/categories", h.CreateCategory)
	router.Put("/categories/:id", h.UpdateCategory)
	router.Delete("/categories/:id", h.DeleteCategory)
	router.Post("/packs", h.CreatePack)
	router.Put("/packs/:id", h.UpdatePack)
	router.Post("/candidates/:id/score/confirm", h.ConfirmScore)
}

func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	stats, err := h.marketplace.AdminDashboard(c.UserContext())
	if err != nil {
		return util.FromError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "dashboard",
		Data:    stats,
	})
}

func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	var role *model.Role
	if raw := c.Query("role"); raw != "" {
		r := model.Role(raw)
		if !r.Valid() {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusBadRequest,
				Message: "unknown role filter",
			})
		}
		role = &r
	}

	users := h.marketplace.ListUsers(c.UserContext(), role, c.Query("q"))
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "users",
		Data:    users,
	})
}

func (h *AdminHandler) ListTests(c *fiber.Ctx) error {
	var status *model.TestStatus
	if raw := c.Query("status"); raw != "" {
		s := model.TestStatus(raw)
		if !s.Valid() {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusBadRequest,
				Message: "unknown status filter",
			})
		}
		status = &s
	}

	tests := h.tests.ListByStatus(c.UserContext(), status)
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "tests",
		Data:    tests,
	})
}

func (h *AdminHandler) GetTest(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid test id",
		}, err)
	}

	test, err := h.tests.GetWithQuestions(c.UserContext(), id)
	if err != nil {
		return util.FromError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "test",
		Data:    test,
	})
}

func (h *AdminHandler) ReviewTest(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid test id",
		}, err)
	}

	var req dto.ReviewTestRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}

	test, err := h.tests.Review(c.UserContext(), id, req)
	if err != nil {
		return util.FromError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "test reviewed",
		Data:    test,
	})
}

func (h *AdminHandler) CreateCategory(c *fiber.Ctx) error {
	var req dto.CategoryInput
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}

	category, err := h.marketplace.CreateCategory(c.UserContext(), req)
	if err != nil {
		return util.FromError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "category created",
		Data:    category,
	})
}

func (h *AdminHandler) UpdateCategory(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid category id",
		}, err)
	}

	var req dto.CategoryInput
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}

	category, err := h.marketplace.UpdateCategory(c.UserContext(), id, req)
	if err != nil {
		return util.FromError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "category updated",
		Data:    category,
	})
}

func (h *AdminHandler) DeleteCategory(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid category id",
		}, err)
	}

	if err := h.marketplace.DeleteCategory(c.UserContext(), id); err != nil {
		return util.FromError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "category deleted",
	})
}

func (h *AdminHandler) CreatePack(c *fiber.Ctx) error {
	var req dto.PackInput
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}

	pack, err := h.marketplace.CreatePack(c.UserContext(), req)
	if err != nil {
		return util.FromError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "talent pack created",
		Data:    pack,
	})
}

func (h *AdminHandler) UpdatePack(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid pack id",
		}, err)
	}

	var req dto.PackInput
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}

	pack, err := h.marketplace.UpdatePack(c.UserContext(), id, req)
	if err != nil {
		return util.FromError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "talent pack updated",
		Data:    pack,
	})
}

func (h *AdminHandler) ConfirmScore(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid candidate id",
		}, err)
	}

	dashboard, err := h.candidates.ConfirmScore(c.UserContext(), id)
	if err != nil {
		return util.FromError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "score confirmed",
		Data:    dashboard,
	})
}
