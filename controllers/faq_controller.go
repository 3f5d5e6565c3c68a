package controllers

import (
	"net/http"
	"strings"

	"studio-backend/models"
	"studio-backend/services"
	"studio-backend/utils"

	"github.com/gin-gonic/gin"
)

type FaqController struct {
	Faqs *services.FaqService
	Logs *services.AdminLogService
}

func NewFaqController(faqs *services.FaqService, logs *services.AdminLogService) *FaqController {
	return &FaqController{Faqs: faqs, Logs: logs}
}

type categoryRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=1,max=255"`
	Order *int    `json:"order"`
}

type faqRequest struct {
	CategoryID *uint   `json:"categoryId"`
	Question   *string `json:"question" binding:"omitempty,min=1"`
	Answer     *string `json:"answer" binding:"omitempty,min=1"`
	Order      *int    `json:"order"`
}

// ---------- categories ----------

func (fc *FaqController) ListCategories(c *gin.Context) {
	categories, err := fc.Faqs.ListCategories(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err, "Failed to fetch FAQ categories")
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (fc *FaqController) CreateCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == nil || strings.TrimSpace(*req.Name) == "" {
		utils.JSONError(c, http.StatusBadRequest, "Name is required")
		return
	}
	order := 0
	if req.Order != nil {
		order = *req.Order
	}

	category, err := fc.Faqs.CreateCategory(c.Request.Context(), strings.TrimSpace(*req.Name), order)
	if err != nil {
		utils.RespondError(c, err, "Failed to create FAQ category")
		return
	}

	recordAdminAction(c, fc.Logs, "faq_category.create", gin.H{"categoryId": category.ID})
	c.JSON(http.StatusCreated, category)
}

func (fc *FaqController) UpdateCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	category, err := fc.Faqs.UpdateCategory(c.Request.Context(), id, services.FaqCategoryUpdate{Name: req.Name, Order: req.Order})
	if err != nil {
		utils.RespondError(c, err, "Failed to update FAQ category")
		return
	}
	if category == nil {
		utils.JSONError(c, http.StatusNotFound, "FAQ category not found")
		return
	}

	recordAdminAction(c, fc.Logs, "faq_category.update", gin.H{"categoryId": id})
	c.JSON(http.StatusOK, category)
}

func (fc *FaqController) DeleteCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	deleted, err := fc.Faqs.DeleteCategory(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err, "Failed to delete FAQ category")
		return
	}
	if !deleted {
		utils.JSONError(c, http.StatusNotFound, "FAQ category not found")
		return
	}

	recordAdminAction(c, fc.Logs, "faq_category.delete", gin.H{"categoryId": id})
	c.Status(http.StatusNoContent)
}

// ---------- faqs ----------

// GET /api/faqs?categoryId=
func (fc *FaqController) ListFaqs(c *gin.Context) {
	categoryID, ok := parseOptionalID(c, "categoryId")
	if !ok {
		return
	}

	faqs, err := fc.Faqs.ListFaqs(c.Request.Context(), categoryID)
	if err != nil {
		utils.RespondError(c, err, "Failed to fetch FAQs")
		return
	}
	c.JSON(http.StatusOK, faqs)
}

func (fc *FaqController) CreateFaq(c *gin.Context) {
	var req faqRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Question == nil || req.Answer == nil {
		utils.JSONError(c, http.StatusBadRequest, "Question and answer are required")
		return
	}

	faq := &models.Faq{CategoryID: req.CategoryID, Question: *req.Question, Answer: *req.Answer}
	if req.Order != nil {
		faq.Order = *req.Order
	}
	if faq.CategoryID != nil {
		category, err := fc.Faqs.GetCategory(c.Request.Context(), *faq.CategoryID)
		if err != nil {
			utils.RespondError(c, err, "Failed to create FAQ")
			return
		}
		if category == nil {
			utils.JSONError(c, http.StatusBadRequest, "Unknown categoryId")
			return
		}
	}

	created, err := fc.Faqs.CreateFaq(c.Request.Context(), faq)
	if err != nil {
		utils.RespondError(c, err, "Failed to create FAQ")
		return
	}

	recordAdminAction(c, fc.Logs, "faq.create", gin.H{"faqId": created.ID})
	c.JSON(http.StatusCreated, created)
}

func (fc *FaqController) UpdateFaq(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req faqRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	faq, err := fc.Faqs.UpdateFaq(c.Request.Context(), id, services.FaqUpdate{
		CategoryID: req.CategoryID,
		Question:   req.Question,
		Answer:     req.Answer,
		Order:      req.Order,
	})
	if err != nil {
		utils.RespondError(c, err, "Failed to update FAQ")
		return
	}
	if faq == nil {
		utils.JSONError(c, http.StatusNotFound, "FAQ not found")
		return
	}

	recordAdminAction(c, fc.Logs, "faq.update", gin.H{"faqId": id})
	c.JSON(http.StatusOK, faq)
}

func (fc *FaqController) DeleteFaq(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	deleted, err := fc.Faqs.DeleteFaq(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err, "Failed to delete FAQ")
		return
	}
	if !deleted {
		utils.JSONError(c, http.StatusNotFound, "FAQ not found")
		return
	}

	recordAdminAction(c, fc.Logs, "faq.delete", gin.H{"faqId": id})
	c.Status(http.StatusNoContent)
}
