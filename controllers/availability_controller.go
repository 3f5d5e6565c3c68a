package controllers

import (
	"net/http"
	"strings"
	"time"

	"studio-backend/services"
	"studio-backend/utils"

	"github.com/gin-gonic/gin"
)

// AvailabilityController serves the booking calendar. Now is the clock used
// for the public window.
type AvailabilityController struct {
	Availability *services.AvailabilityService
	Logs         *services.AdminLogService
	Now          func() time.Time
}

func NewAvailabilityController(availability *services.AvailabilityService, logs *services.AdminLogService) *AvailabilityController {
	return &AvailabilityController{Availability: availability, Logs: logs, Now: time.Now}
}

// WindowMonths is how far ahead the public calendar reaches.
const WindowMonths = 3

type createDateRequest struct {
	Date string `json:"date" binding:"required"`
}

type setAvailabilityRequest struct {
	IsAvailable *bool `json:"isAvailable" binding:"required"`
}

type createTimeSlotRequest struct {
	StartTime   string `json:"startTime" binding:"required,hhmm"`
	EndTime     string `json:"endTime" binding:"required,hhmm"`
	IsAvailable *bool  `json:"isAvailable"`
}

// parseDate accepts a bare day or an RFC3339 timestamp. A timestamp keeps its
// own offset so the calendar day is the one the caller wrote.
func parseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// GET /api/availability
func (ac *AvailabilityController) ListWindow(c *gin.Context) {
	start := services.DateOnly(ac.Now().UTC())
	end := start.AddDate(0, WindowMonths, 0)

	dates, err := ac.Availability.ListDates(c.Request.Context(), start, end)
	if err != nil {
		utils.RespondError(c, err, "Failed to fetch availability")
		return
	}
	c.JSON(http.StatusOK, dates)
}

// POST /api/availability
func (ac *AvailabilityController) CreateDate(c *gin.Context) {
	var req createDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Date is required")
		return
	}
	day, ok := parseDate(req.Date)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Date must be formatted YYYY-MM-DD")
		return
	}

	date, err := ac.Availability.CreateDate(c.Request.Context(), day)
	if err != nil {
		utils.RespondError(c, err, "Failed to create availability date")
		return
	}

	recordAdminAction(c, ac.Logs, "availability.create_date", gin.H{"dateId": date.ID, "date": day.Format("2006-01-02")})
	c.JSON(http.StatusCreated, date)
}

// PATCH /api/availability/:id
func (ac *AvailabilityController) UpdateDate(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req setAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "isAvailable is required")
		return
	}

	date, err := ac.Availability.UpdateDate(c.Request.Context(), id, *req.IsAvailable)
	if err != nil {
		utils.RespondError(c, err, "Failed to update availability date")
		return
	}
	if date == nil {
		utils.JSONError(c, http.StatusNotFound, "Availability date not found")
		return
	}

	recordAdminAction(c, ac.Logs, "availability.update_date", gin.H{"dateId": id, "isAvailable": *req.IsAvailable})
	c.JSON(http.StatusOK, date)
}

// POST /api/availability/:id/timeslots
func (ac *AvailabilityController) CreateTimeSlot(c *gin.Context) {
	dateID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req createTimeSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "startTime and endTime must be HH:MM")
		return
	}
	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	slot, err := ac.Availability.CreateTimeSlot(c.Request.Context(), dateID, req.StartTime, req.EndTime, isAvailable)
	if err != nil {
		utils.RespondError(c, err, "Failed to create time slot")
		return
	}
	if slot == nil {
		utils.JSONError(c, http.StatusNotFound, "Availability date not found")
		return
	}

	recordAdminAction(c, ac.Logs, "availability.create_timeslot", gin.H{"dateId": dateID, "timeSlotId": slot.ID})
	c.JSON(http.StatusCreated, slot)
}

// PATCH /api/availability/timeslots/:id
func (ac *AvailabilityController) UpdateTimeSlot(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req setAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "isAvailable is required")
		return
	}

	slot, err := ac.Availability.UpdateTimeSlot(c.Request.Context(), id, *req.IsAvailable)
	if err != nil {
		utils.RespondError(c, err, "Failed to update time slot")
		return
	}
	if slot == nil {
		utils.JSONError(c, http.StatusNotFound, "Time slot not found")
		return
	}

	recordAdminAction(c, ac.Logs, "availability.update_timeslot", gin.H{"timeSlotId": id, "isAvailable": *req.IsAvailable})
	c.JSON(http.StatusOK, slot)
}
