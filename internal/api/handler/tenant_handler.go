package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/plazaops/property-system/internal/api/metrics"
	"github.com/plazaops/property-system/internal/core/ports"
)

// TenantHandler handles HTTP requests for tenant-lease operations. All
// routes sit behind Protect, so an identity is always attached.
type TenantHandler struct {
	service ports.TenantService
}

func NewTenantHandler(service ports.TenantService) *TenantHandler {
	return &TenantHandler{service: service}
}

// Create handles POST /tenants.
//
// @Summary      Register a tenant lease
// @Tags         tenants
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTenantRequest  true  "Lease details"
// @Success      201   {object}  domain.Tenant
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /tenants [post]
func (h *TenantHandler) Create(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req createTenantRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	in, err := toCreateTenantInput(req)
	if err != nil {
		return err
	}

	tenant, err := h.service.Create(c.Request().Context(), user.ID, in)
	if err != nil {
		return err
	}

	metrics.TenantOpsTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusCreated, tenant)
}

// List handles GET /tenants. Only the caller's own leases come back.
//
// @Summary      List the caller's tenant leases
// @Tags         tenants
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Tenant
// @Router       /tenants [get]
func (h *TenantHandler) List(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	tenants, err := h.service.List(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tenants)
}

// Get handles GET /tenants/:id.
//
// @Summary      Get a tenant lease by id
// @Tags         tenants
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Tenant id"
// @Success      200  {object}  domain.Tenant
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /tenants/{id} [get]
func (h *TenantHandler) Get(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	tenant, err := h.service.Get(c.Request().Context(), user.ID, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tenant)
}

// Update handles PUT /tenants/:id as a partial merge.
//
// @Summary      Update a tenant lease
// @Tags         tenants
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Tenant id"
// @Param        body  body      updateTenantRequest  true  "Fields to change"
// @Success      200   {object}  domain.Tenant
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /tenants/{id} [put]
func (h *TenantHandler) Update(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req updateTenantRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	in, err := toUpdateTenantInput(req)
	if err != nil {
		return err
	}

	tenant, err := h.service.Update(c.Request().Context(), user.ID, c.Param("id"), in)
	if err != nil {
		return err
	}

	metrics.TenantOpsTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, tenant)
}

// Delete handles DELETE /tenants/:id.
//
// @Summary      Delete a tenant lease
// @Tags         tenants
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Tenant id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /tenants/{id} [delete]
func (h *TenantHandler) Delete(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), user.ID, c.Param("id")); err != nil {
		return err
	}

	metrics.TenantOpsTotal.WithLabelValues("delete").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "tenant removed"})
}
