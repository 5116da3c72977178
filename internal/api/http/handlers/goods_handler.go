package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/goods-service/internal/api/dto"
	"github.com/spec-kit/goods-service/internal/service"
	"github.com/spec-kit/goods-service/pkg/response"
)

// GoodsHandler exposes the protected goods CRUD endpoints. The auth gate
// runs before every one of them.
type GoodsHandler struct {
	goods *service.GoodsService
}

// NewGoodsHandler constructs handler.
func NewGoodsHandler(goodsService *service.GoodsService) *GoodsHandler {
	return &GoodsHandler{goods: goodsService}
}

// Add handles POST /goods/add.
func (h *GoodsHandler) Add(c *fiber.Ctx) error {
	var req dto.GoodsRequest
	_ = c.BodyParser(&req)

	goods, err := h.goods.Create(c.Context(), req.Name)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(response.OK(dto.NewGoodsItem(goods)))
}

// List handles GET /goods.
func (h *GoodsHandler) List(c *fiber.Ctx) error {
	items, err := h.goods.List(c.Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(response.OK(dto.NewGoodsItems(items)))
}

// Find handles GET /goods/:id.
func (h *GoodsHandler) Find(c *fiber.Ctx) error {
	goods, err := h.goods.Get(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(response.OK(dto.NewGoodsItem(goods)))
}

// Update handles PUT /goods/:id.
func (h *GoodsHandler) Update(c *fiber.Ctx) error {
	var req dto.GoodsRequest
	_ = c.BodyParser(&req)

	goods, err := h.goods.Update(c.Context(), c.Params("id"), req.Name)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(response.OK(dto.NewGoodsItem(goods)))
}

// Delete handles DELETE /goods/:id.
func (h *GoodsHandler) Delete(c *fiber.Ctx) error {
	if err := h.goods.Delete(c.Context(), c.Params("id")); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(response.OK(nil))
}

// fail maps expected service failures to their envelopes; anything else
// propagates to the outer middleware.
func (h *GoodsHandler) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrNameRequired):
		return c.JSON(response.Fail(response.KindInvalidInput))
	case errors.Is(err, service.ErrGoodsNotFound):
		return c.JSON(response.Fail(response.KindGoodsNotFound))
	default:
		return err
	}
}
