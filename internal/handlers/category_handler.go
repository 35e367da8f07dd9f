package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/neal92/ServiceBooking-sub000/internal/cache"
	"github.com/neal92/ServiceBooking-sub000/internal/httperr"
	"github.com/neal92/ServiceBooking-sub000/internal/httpresp"
	"github.com/neal92/ServiceBooking-sub000/internal/models"
)

type CategoryHandler struct {
	db      *gorm.DB
	catalog *cache.Catalog
}

func NewCategoryHandler(db *gorm.DB, catalog *cache.Catalog) *CategoryHandler {
	return &CategoryHandler{db: db, catalog: catalog}
}

// --------- Requests ---------

type CategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// --------- Handlers ---------

func (h *CategoryHandler) List(c *gin.Context) {
	var categories []models.Category
	if err := h.db.Order("name ASC").Find(&categories).Error; err != nil {
		httperr.Internal(c, "failed_to_list_categories", "Could not load categories.")
		return
	}

	httpresp.List(c, categories)
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid category payload.")
		return
	}

	category := models.Category{
		Name:        req.Name,
		Description: req.Description,
	}

	if err := h.db.Create(&category).Error; err != nil {
		httperr.Internal(c, "failed_to_create_category", "Could not create category.")
		return
	}

	h.catalog.Invalidate(c.Request.Context())
	c.JSON(http.StatusCreated, category)
}

func (h *CategoryHandler) Update(c *gin.Context) {
	var category models.Category
	if err := h.db.First(&category, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "category_not_found", "Category not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_category", "Could not load category.")
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid category payload.")
		return
	}

	category.Name = req.Name
	category.Description = req.Description

	if err := h.db.Save(&category).Error; err != nil {
		httperr.Internal(c, "failed_to_update_category", "Could not update category.")
		return
	}

	h.catalog.Invalidate(c.Request.Context())
	httpresp.OK(c, category)
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	var category models.Category
	if err := h.db.First(&category, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "category_not_found", "Category not found.")
		return
	}

	var inUse int64
	if err := h.db.Model(&models.Service{}).
		Where("category_id = ?", category.ID).
		Count(&inUse).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_category", "Could not delete category.")
		return
	}
	if inUse > 0 {
		httperr.Conflict(c, "category_in_use", "Move or delete its services first.")
		return
	}

	if err := h.db.Delete(&category).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_category", "Could not delete category.")
		return
	}

	h.catalog.Invalidate(c.Request.Context())
	c.Status(http.StatusNoContent)
}
