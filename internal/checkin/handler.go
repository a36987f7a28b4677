package checkin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mkelley412/youth-group-backend/middleware"
)

type Handler struct {
	Service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{Service: s}
}

func respondCheckinError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrStoreUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	case errors.Is(err, ErrEventNotFound), errors.Is(err, ErrPersonNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "check-in operation failed"})
	}
}

func parseCheckinEventID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return 0, false
	}
	return uint(id), true
}

// CheckIn godoc
// @Summary Check a student in to an event
// @Description Idempotent; a repeat check-in reports alreadyCheckedIn
// @Tags check-ins
// @Accept json
// @Produce json
// @Param id path int true "Event ID"
// @Param checkin body CheckInRequest true "Student to check in"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /events/{id}/checkins [post]
func (h *Handler) CheckIn(c *gin.Context) {
	eventID, ok := parseCheckinEventID(c)
	if !ok {
		return
	}
	var req CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	added, err := h.Service.CheckIn(c.Request.Context(), eventID, req.StudentID, middleware.GetIPFromContext(c))
	if err != nil {
		respondCheckinError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"eventId":          eventID,
		"studentId":        req.StudentID,
		"checkedIn":        true,
		"alreadyCheckedIn": !added,
	})
}

// CheckOut godoc
// @Summary Check a student out of an event
// @Tags check-ins
// @Produce json
// @Param id path int true "Event ID"
// @Param studentId path int true "Student (person) ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /events/{id}/checkins/{studentId} [delete]
func (h *Handler) CheckOut(c *gin.Context) {
	eventID, ok := parseCheckinEventID(c)
	if !ok {
		return
	}
	studentID, err := strconv.ParseUint(c.Param("studentId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid student id"})
		return
	}

	removed, svcErr := h.Service.CheckOut(c.Request.Context(), eventID, uint(studentID), middleware.GetIPFromContext(c))
	if svcErr != nil {
		respondCheckinError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"eventId":      eventID,
		"studentId":    studentID,
		"checkedOut":   true,
		"wasCheckedIn": removed,
	})
}

// GetLiveCheckIns godoc
// @Summary Current check-in roster for an event
// @Tags check-ins
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} LiveCheckIns
// @Failure 404 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /events/{id}/checkins [get]
func (h *Handler) GetLiveCheckIns(c *gin.Context) {
	eventID, ok := parseCheckinEventID(c)
	if !ok {
		return
	}
	roster, err := h.Service.GetLiveCheckIns(c.Request.Context(), eventID)
	if err != nil {
		respondCheckinError(c, err)
		return
	}
	c.JSON(http.StatusOK, roster)
}

// ResetCheckIns godoc
// @Summary Clear all check-ins for an event
// @Tags check-ins
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /events/{id}/checkins [delete]
func (h *Handler) ResetCheckIns(c *gin.Context) {
	eventID, ok := parseCheckinEventID(c)
	if !ok {
		return
	}
	if err := h.Service.Reset(c.Request.Context(), eventID, middleware.GetIPFromContext(c)); err != nil {
		respondCheckinError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "check-ins cleared"})
}
