package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/talentpulse/backend/internal/dto"
	"github.com/talentpulse/backend/internal/middleware"
	"github.com/talentpulse/backend/internal/usecase"
	"github.com/talentpulse/backend/internal/util"
)

type CompanyHandler struct {
	marketplace usecase.MarketplaceUsecaseInterface
	tests       usecase.TestsUsecaseInterface
}

func NewCompanyHandler(marketplace usecase.MarketplaceUsecaseInterface, tests usecase.TestsUsecaseInterface) *CompanyHandler {
	return &CompanyHandler{marketplace: marketplace, tests: tests}
}

func (h *CompanyHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/dashboard", h.Dashboard)
	router.Get("/subscriptions", h.Subscriptions)
	router.Post("/packs/:id/purchase", h.PurchasePack)
	router.Get("/tests", h.ListTests)
	router.Post("/tests", h.CreateTest)
	router.Get("/tests/:id", h.GetTest)
	router.Post("/tests/:id/questions", h.AddQuestions)
}

func (h *CompanyHandler) Dashboard(c *fiber.Ctx) error {
	snap := middleware.Session(c)
	stats, err := h.marketplace.CompanyDashboard(c.UserContext(), snap.Identity.ID)
	if err != nil {
		return util.FromError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "dashboard",
		Data:    stats,
	})
}

func (h *CompanyHandler) Subscriptions(c *fiber.Ctx) error {
	snap := middleware.Session(c)
	subscriptions := h.marketplace.ListSubscriptions(c.UserContext(), snap.Identity.ID)
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "subscriptions",
		Data:    subscriptions,
	})
}

func (h *CompanyHandler) PurchasePack(c *fiber.Ctx) error {
	snap := middleware.Session(c)
	packID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid pack id",
		}, err)
	}

	purchase, err := h.marketplace.PurchasePack(c.UserContext(), snap.Identity.ID, packID)
	if err != nil {
		return util.FromError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "pack purchased",
		Data:    purchase,
	})
}

func (h *CompanyHandler) ListTests(c *fiber.Ctx) error {
	snap := middleware.Session(c)
	tests := h.tests.ListForCompany(c.UserContext(), snap.Identity.ID)
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "tests",
		Data:    tests,
	})
}

func (h *CompanyHandler) CreateTest(c *fiber.Ctx) error {
	snap := middleware.Session(c)

	var req dto.CreateTestRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}

	test, err := h.tests.Create(c.UserContext(), snap.Identity.ID, req)
	if err != nil {
		return util.FromError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "test created",
		Data:    test,
	})
}

func (h *CompanyHandler) GetTest(c *fiber.Ctx) error {
	snap := middleware.Session(c)
	testID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid test id",
		}, err)
	}

	test, err := h.tests.GetWithQuestions(c.UserContext(), testID)
	if err != nil {
		return util.FromError(c, err)
	}
	if test.CompanyID != snap.Identity.ID {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnauthorized,
			Message: "this test belongs to another company",
		})
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "test",
		Data:    test,
	})
}

func (h *CompanyHandler) AddQuestions(c *fiber.Ctx) error {
	snap := middleware.Session(c)
	testID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid test id",
		}, err)
	}

	var req dto.AddQuestionsRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}

	test, err := h.tests.AddQuestions(c.UserContext(), snap.Identity.ID, testID, req)
	if err != nil {
		return util.FromError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "questions added",
		Data:    test,
	})
}
