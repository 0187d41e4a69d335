package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/plazaops/property-system/internal/api/metrics"
	"github.com/plazaops/property-system/internal/core/domain"
	"github.com/plazaops/property-system/internal/core/ports"
)

// VacantShopHandler handles HTTP requests for vacant-shop listings. Reads
// are public; writes sit behind Protect + Authorize(admin).
type VacantShopHandler struct {
	service ports.VacantShopService
}

func NewVacantShopHandler(service ports.VacantShopService) *VacantShopHandler {
	return &VacantShopHandler{service: service}
}

type createVacantShopRequest struct {
	ShopNumber string `json:"shop_number" validate:"required"`
	Dimensions string `json:"dimensions" validate:"required"`
}

type updateVacantShopRequest struct {
	ShopNumber string `json:"shop_number"`
	Dimensions string `json:"dimensions"`
}

// vacantShopEnvelope mirrors the original listing API: payloads are wrapped
// with a human-readable message.
type vacantShopEnvelope struct {
	Message string             `json:"message"`
	Data    *domain.VacantShop `json:"data,omitempty"`
}

type vacantShopListEnvelope struct {
	Message string               `json:"message"`
	Data    []*domain.VacantShop `json:"data"`
}

// Create handles POST /vacant-shops (administrator only).
//
// @Summary      Publish a vacant-shop listing
// @Tags         vacant-shops
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createVacantShopRequest  true  "Listing details"
// @Success      201   {object}  vacantShopEnvelope
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /vacant-shops [post]
func (h *VacantShopHandler) Create(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req createVacantShopRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	shop, err := h.service.Create(c.Request().Context(), user.ID, ports.CreateVacantShopInput{
		ShopNumber: req.ShopNumber,
		Dimensions: req.Dimensions,
	})
	if err != nil {
		return err
	}

	metrics.VacantShopOpsTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusCreated, vacantShopEnvelope{
		Message: "vacant shop created successfully",
		Data:    shop,
	})
}

// List handles GET /vacant-shops, a public route.
//
// @Summary      List vacant shops
// @Tags         vacant-shops
// @Produce      json
// @Success      200  {object}  vacantShopListEnvelope
// @Router       /vacant-shops [get]
func (h *VacantShopHandler) List(c echo.Context) error {
	shops, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if shops == nil {
		shops = []*domain.VacantShop{}
	}
	return c.JSON(http.StatusOK, vacantShopListEnvelope{
		Message: "all vacant shops fetched successfully",
		Data:    shops,
	})
}

// Get handles GET /vacant-shops/:id, a public route.
//
// @Summary      Get a vacant shop by id
// @Tags         vacant-shops
// @Produce      json
// @Param        id   path      string  true  "Listing id"
// @Success      200  {object}  vacantShopEnvelope
// @Failure      404  {object}  map[string]string
// @Router       /vacant-shops/{id} [get]
func (h *VacantShopHandler) Get(c echo.Context) error {
	shop, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, vacantShopEnvelope{
		Message: "vacant shop fetched successfully",
		Data:    shop,
	})
}

// Update handles PUT /vacant-shops/:id (administrator only). Only supplied
// fields overwrite.
//
// @Summary      Update a vacant-shop listing
// @Tags         vacant-shops
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                   true  "Listing id"
// @Param        body  body      updateVacantShopRequest  true  "Fields to change"
// @Success      200   {object}  vacantShopEnvelope
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /vacant-shops/{id} [put]
func (h *VacantShopHandler) Update(c echo.Context) error {
	var req updateVacantShopRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	shop, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateVacantShopInput{
		ShopNumber: req.ShopNumber,
		Dimensions: req.Dimensions,
	})
	if err != nil {
		return err
	}

	metrics.VacantShopOpsTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, vacantShopEnvelope{
		Message: "vacant shop updated successfully",
		Data:    shop,
	})
}

// Delete handles DELETE /vacant-shops/:id (administrator only).
//
// @Summary      Remove a vacant-shop listing
// @Tags         vacant-shops
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Listing id"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /vacant-shops/{id} [delete]
func (h *VacantShopHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	metrics.VacantShopOpsTotal.WithLabelValues("delete").Inc()
	return c.JSON(http.StatusOK, map[string]string{
		"message": "vacant shop removed successfully",
		"id":      id,
	})
}
