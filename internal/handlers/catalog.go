package handlers

import (
	"net/http"

	"autoservice-backend/internal/models"
	"autoservice-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalog *services.CatalogService
}

func NewCatalogHandler(catalog *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
	}
}

// ListServices godoc
// @Summary     Service catalog
// @Tags        catalog
// @Produce     json
// @Success     200 {object} models.ServiceListResponse
// @Router      /catalog [get]
func (h *CatalogHandler) ListServices(c *gin.Context) {
	c.JSON(http.StatusOK, models.ServiceListResponse{Services: h.catalog.Services()})
}

// CreateService godoc
// @Summary     Add a catalog product
// @Tags        catalog
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.ServiceProduct true "Product; id is generated when empty"
// @Success     201 {object} models.ServiceProduct
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /catalog [post]
func (h *CatalogHandler) CreateService(c *gin.Context) {
	var product models.ServiceProduct
	if err := c.ShouldBindJSON(&product); err != nil {
		bindError(c, err)
		return
	}

	saved, err := h.catalog.SaveService(c.Request.Context(), product)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

// ReplaceServices godoc
// @Summary     Replace the whole catalog
// @Tags        catalog
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.ReplaceServicesRequest true "Every product; ids are generated when empty"
// @Success     200 {object} models.ServiceListResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /catalog [put]
func (h *CatalogHandler) ReplaceServices(c *gin.Context) {
	var req models.ReplaceServicesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	if err := h.catalog.ReplaceServices(c.Request.Context(), req.Services); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.ServiceListResponse{Services: h.catalog.Services()})
}

// UpdateService godoc
// @Summary     Replace a catalog product
// @Tags        catalog
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       id path string true "Product id"
// @Param       request body models.ServiceProduct true "Product"
// @Success     200 {object} models.ServiceProduct
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /catalog/{id} [put]
func (h *CatalogHandler) UpdateService(c *gin.Context) {
	id := c.Param("id")
	if _, ok := h.catalog.Service(id); !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "not found", Message: "service " + id})
		return
	}

	var product models.ServiceProduct
	if err := c.ShouldBindJSON(&product); err != nil {
		bindError(c, err)
		return
	}
	product.ID = id

	saved, err := h.catalog.SaveService(c.Request.Context(), product)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

// DeleteService godoc
// @Summary     Remove a catalog product
// @Tags        catalog
// @Security    Bearer
// @Param       id path string true "Product id"
// @Success     204
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /catalog/{id} [delete]
func (h *CatalogHandler) DeleteService(c *gin.Context) {
	if err := h.catalog.DeleteService(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetShop godoc
// @Summary     Shop profile
// @Tags        shop
// @Produce     json
// @Success     200 {object} models.ShopInfo
// @Router      /shop [get]
func (h *CatalogHandler) GetShop(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Shop())
}

// UpdateShop godoc
// @Summary     Update the shop profile
// @Tags        shop
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.ShopInfo true "Shop profile"
// @Success     200 {object} models.ShopInfo
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Router      /shop [put]
func (h *CatalogHandler) UpdateShop(c *gin.Context) {
	var info models.ShopInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		bindError(c, err)
		return
	}

	saved, err := h.catalog.SaveShop(c.Request.Context(), info)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}
