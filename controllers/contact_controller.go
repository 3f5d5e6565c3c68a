package controllers

import (
	"net/http"
	"strings"

	"studio-backend/models"
	"studio-backend/services"
	"studio-backend/utils"

	"github.com/gin-gonic/gin"
)

type ContactController struct {
	Contacts *services.ContactService
}

func NewContactController(contacts *services.ContactService) *ContactController {
	return &ContactController{Contacts: contacts}
}

type contactRequest struct {
	Name    string `json:"name" binding:"required,max=255"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"max=50"`
	Message string `json:"message" binding:"required"`
}

// POST /api/contact
func (cc *ContactController) Create(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Name, a valid email and a message are required")
		return
	}

	msg, err := cc.Contacts.Create(c.Request.Context(), &models.ContactMessage{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Phone:   strings.TrimSpace(req.Phone),
		Message: strings.TrimSpace(req.Message),
	})
	if err != nil {
		utils.RespondError(c, err, "Failed to send message")
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// GET /api/admin/contact
func (cc *ContactController) List(c *gin.Context) {
	messages, err := cc.Contacts.List(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err, "Failed to fetch messages")
		return
	}
	c.JSON(http.StatusOK, messages)
}
