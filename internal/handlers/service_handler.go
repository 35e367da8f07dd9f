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
	"github.com/neal92/ServiceBooking-sub000/internal/storage"
)

type ServiceHandler struct {
	db      *gorm.DB
	catalog *cache.Catalog
	images  *storage.ImageStore
}

func NewServiceHandler(db *gorm.DB, catalog *cache.Catalog, images *storage.ImageStore) *ServiceHandler {
	return &ServiceHandler{db: db, catalog: catalog, images: images}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Duration    int     `json:"duration" binding:"required,min=1"`
	Price       float64 `json:"price" binding:"required"`
	CategoryID  uint    `json:"categoryId" binding:"required"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Duration    *int     `json:"duration,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	CategoryID  *uint    `json:"categoryId,omitempty"`
	Active      *bool    `json:"active,omitempty"`
}

// --------- Public catalog ---------

// List serves the public catalog, cache first.
func (h *ServiceHandler) List(c *gin.Context) {
	if services, ok := h.catalog.GetServices(c.Request.Context()); ok {
		httpresp.List(c, services)
		return
	}

	var services []models.Service
	if err := h.db.
		Preload("Category").
		Where("active = true").
		Order("id ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Could not load services.")
		return
	}

	h.catalog.SetServices(c.Request.Context(), services)
	httpresp.List(c, services)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	var svc models.Service
	if err := h.db.Preload("Category").First(&svc, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	httpresp.OK(c, svc)
}

// --------- Admin ---------

// ListAll includes inactive services; admin dashboard only.
func (h *ServiceHandler) ListAll(c *gin.Context) {
	var services []models.Service
	if err := h.db.
		Preload("Category").
		Order("id ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Could not load services.")
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid service payload.")
		return
	}

	var category models.Category
	if err := h.db.First(&category, req.CategoryID).Error; err != nil {
		httperr.BadRequest(c, "category_not_found", "Category does not exist.")
		return
	}

	svc := models.Service{
		CategoryID:  category.ID,
		Name:        req.Name,
		Description: req.Description,
		DurationMin: req.Duration,
		Price:       req.Price,
		Active:      true,
	}

	if err := h.db.Create(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Could not create service.")
		return
	}

	h.catalog.Invalidate(c.Request.Context())
	c.JSON(http.StatusCreated, svc)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	var svc models.Service
	if err := h.db.First(&svc, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "service_not_found", "Service not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_service", "Could not load service.")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid service payload.")
		return
	}

	if req.Name != nil {
		svc.Name = *req.Name
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.Duration != nil {
		svc.DurationMin = *req.Duration
	}
	if req.Price != nil {
		svc.Price = *req.Price
	}
	if req.CategoryID != nil {
		var category models.Category
		if err := h.db.First(&category, *req.CategoryID).Error; err != nil {
			httperr.BadRequest(c, "category_not_found", "Category does not exist.")
			return
		}
		svc.CategoryID = category.ID
	}
	if req.Active != nil {
		svc.Active = *req.Active
	}

	if err := h.db.Save(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Could not update service.")
		return
	}

	h.catalog.Invalidate(c.Request.Context())
	httpresp.OK(c, svc)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	var svc models.Service
	if err := h.db.First(&svc, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	if err := h.db.Delete(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_service", "Could not delete service.")
		return
	}

	h.catalog.Invalidate(c.Request.Context())
	c.Status(http.StatusNoContent)
}

// --------- Image upload ---------

func (h *ServiceHandler) UploadImage(c *gin.Context) {
	if h.images == nil {
		httperr.Write(c, http.StatusServiceUnavailable,
			"image_storage_unconfigured", "Image storage is not configured.")
		return
	}

	var svc models.Service
	if err := h.db.First(&svc, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "An image file is required.")
		return
	}

	f, err := file.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_image", "Could not read the upload.")
		return
	}
	defer f.Close()

	url, err := h.images.UploadServiceImage(c.Request.Context(), svc.ID, f)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_image") {
			httperr.BadRequest(c, "invalid_image", "Only JPEG and PNG uploads are supported.")
			return
		}
		httperr.Internal(c, "failed_to_store_image", "Could not store the image.")
		return
	}

	svc.ImageURL = url
	if err := h.db.Save(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Could not update service.")
		return
	}

	h.catalog.Invalidate(c.Request.Context())
	httpresp.OK(c, gin.H{"imageUrl": url})
}
