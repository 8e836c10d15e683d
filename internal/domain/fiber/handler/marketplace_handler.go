package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/talentpulse/backend/internal/dto"
	"github.com/talentpulse/backend/internal/response"
	"github.com/talentpulse/backend/internal/usecase"
	"github.com/talentpulse/backend/internal/util"
)

type MarketplaceHandler struct {
	uc usecase.MarketplaceUsecaseInterface
}

func NewMarketplaceHandler(uc usecase.MarketplaceUsecaseInterface) *MarketplaceHandler {
	return &MarketplaceHandler{uc: uc}
}

func (h *MarketplaceHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/categories", h.ListCategories)
	router.Get("/categories/:id", h.GetCategory)
	router.Get("/packs", h.ListPacks)
	router.Get("/packs/featured", h.FeaturedPacks)
	router.Get("/packs/:id", h.GetPack)
}

func (h *MarketplaceHandler) ListCategories(c *fiber.Ctx) error {
	categories := h.uc.ListCategories(c.UserContext())
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "categories",
		Data:    categories,
	})
}

func (h *MarketplaceHandler) GetCategory(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid category id",
		}, err)
	}

	category, err := h.uc.GetCategory(c.UserContext(), id)
	if err != nil {
		return util.FromError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "category",
		Data:    category,
	})
}

func (h *MarketplaceHandler) ListPacks(c *fiber.Ctx) error {
	var categoryID *uuid.UUID
	if raw := c.Query("categoryId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusBadRequest,
				Message: "invalid category filter",
			}, err)
		}
		categoryID = &id
	}

	packs := h.uc.ListPacks(c.UserContext(), categoryID)
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("pageSize", 20)
	paged, pagination := paginate(packs, page, pageSize)

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message:    "talent packs",
		Data:       paged,
		Pagination: pagination,
	})
}

func (h *MarketplaceHandler) FeaturedPacks(c *fiber.Ctx) error {
	packs := h.uc.FeaturedPacks(c.UserContext())
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "featured packs",
		Data:    packs,
	})
}

func (h *MarketplaceHandler) GetPack(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid pack id",
		}, err)
	}

	pack, err := h.uc.GetPack(c.UserContext(), id)
	if err != nil {
		return util.FromError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "talent pack",
		Data:    pack,
	})
}

func paginate(packs []dto.TalentPack, page, pageSize int) ([]dto.TalentPack, *response.Pagination) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	from := (page - 1) * pageSize
	if from > len(packs) {
		from = len(packs)
	}
	to := from + pageSize
	if to > len(packs) {
		to = len(packs)
	}

	return packs[from:to], response.NewPagination(page, pageSize, from, to, int64(len(packs)))
}
