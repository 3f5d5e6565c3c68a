package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"studio-backend/services"
	"studio-backend/utils"

	"github.com/gin-gonic/gin"
)

type GalleryController struct {
	Galleries *services.GalleryService
	Images    *services.ImageStore
	Logs      *services.AdminLogService
}

func NewGalleryController(galleries *services.GalleryService, images *services.ImageStore, logs *services.AdminLogService) *GalleryController {
	return &GalleryController{Galleries: galleries, Images: images, Logs: logs}
}

type createGalleryRequest struct {
	AccessCode string `json:"accessCode" binding:"omitempty,min=4,max=64"`
	Title      string `json:"title" binding:"max=255"`
}

// addPhotoRequest takes either a hosted URL or a base64 image to store.
type addPhotoRequest struct {
	URL   string `json:"url" binding:"omitempty,url"`
	Image string `json:"image"`
}

// GET /api/galleries/access/:code
func (gc *GalleryController) GetByAccessCode(c *gin.Context) {
	code := strings.TrimSpace(c.Param("code"))

	gallery, err := gc.Galleries.GetByAccessCode(c.Request.Context(), code)
	if err != nil {
		utils.RespondError(c, err, "Failed to fetch gallery")
		return
	}
	if gallery == nil {
		utils.JSONError(c, http.StatusNotFound, "Gallery not found")
		return
	}

	photos, err := gc.Galleries.GetPhotos(c.Request.Context(), gallery.ID)
	if err != nil {
		utils.RespondError(c, err, "Failed to fetch gallery")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":         gallery.ID,
		"accessCode": gallery.AccessCode,
		"photos":     photos,
	})
}

// GET /api/admin/galleries
func (gc *GalleryController) List(c *gin.Context) {
	galleries, err := gc.Galleries.List(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err, "Failed to fetch galleries")
		return
	}
	c.JSON(http.StatusOK, galleries)
}

// POST /api/admin/galleries
func (gc *GalleryController) Create(c *gin.Context) {
	var req createGalleryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	gallery, err := gc.Galleries.Create(c.Request.Context(), req.AccessCode, req.Title)
	if err != nil {
		utils.RespondError(c, err, "Failed to create gallery")
		return
	}

	recordAdminAction(c, gc.Logs, "gallery.create", gin.H{"galleryId": gallery.ID})
	c.JSON(http.StatusCreated, gallery)
}

// POST /api/admin/galleries/:id/photos
func (gc *GalleryController) AddPhoto(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req addPhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil || (req.URL == "") == (req.Image == "") {
		utils.JSONError(c, http.StatusBadRequest, "Provide exactly one of url or image")
		return
	}

	gallery, err := gc.Galleries.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err, "Failed to add photo")
		return
	}
	if gallery == nil {
		utils.JSONError(c, http.StatusNotFound, "Gallery not found")
		return
	}

	url := req.URL
	if req.Image != "" {
		url, err = gc.Images.SaveBase64(req.Image, fmt.Sprintf("galleries/%d", gallery.ID))
		if err != nil {
			utils.RespondError(c, err, "Failed to store image")
			return
		}
	}

	photo, err := gc.Galleries.AddPhoto(c.Request.Context(), gallery.ID, url)
	if err != nil {
		utils.RespondError(c, err, "Failed to add photo")
		return
	}
	if photo == nil {
		utils.JSONError(c, http.StatusNotFound, "Gallery not found")
		return
	}

	recordAdminAction(c, gc.Logs, "gallery.add_photo", gin.H{"galleryId": gallery.ID, "photoId": photo.ID})
	c.JSON(http.StatusCreated, photo)
}
