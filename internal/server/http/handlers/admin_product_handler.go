package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/zendocod/zendo/internal/domain/errors"
	"github.com/zendocod/zendo/internal/server/http/dto"
	"github.com/zendocod/zendo/internal/usecase"
)

// AdminProductHandler manages catalog writes from the back office.
type AdminProductHandler struct {
	facade AdminProductFacade
}

// NewAdminProductHandler constructs AdminProductHandler.
func NewAdminProductHandler(facade AdminProductFacade) *AdminProductHandler {
	return &AdminProductHandler{facade: facade}
}

// Create handles POST /api/admin/products.
func (h *AdminProductHandler) Create(c *gin.Context) {
	var req dto.SaveProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	product, err := h.facade.CreateProduct(c.Request.Context(), toSaveProductInput(req))
	if err != nil {
		if errors.Is(err, domainErrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, toProductResponse(*product))
}

// Update handles PUT /api/admin/products/:slug.
func (h *AdminProductHandler) Update(c *gin.Context) {
	var req dto.SaveProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	product, err := h.facade.UpdateProduct(c.Request.Context(), c.Param("slug"), toSaveProductInput(req))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		case errors.Is(err, domainErrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, toProductResponse(*product))
}

func toSaveProductInput(req dto.SaveProductRequest) usecase.SaveProductInput {
	return usecase.SaveProductInput{
		Slug:         req.Slug,
		Name:         req.Name,
		ShortDesc:    req.ShortDesc,
		FullDesc:     req.FullDesc,
		Images:       req.Images,
		Benefits:     req.Benefits,
		Usage:        req.Usage,
		Guarantee:    req.Guarantee,
		DeliveryInfo: req.DeliveryInfo,
		Offers:       req.Offers,
	}
}
