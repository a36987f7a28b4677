package attendance

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

func respondAttendanceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrPersonNotFound), errors.Is(err, ErrEventNotFound),
		errors.Is(err, ErrAttendanceNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, ErrAlreadyRecorded):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "attendance operation failed"})
	}
}

// RecordAttendance godoc
// @Summary Record that a person attended an event
// @Tags attendance
// @Accept json
// @Produce json
// @Param attendance body CreateAttendanceRequest true "Attendance details"
// @Success 201 {object} AttendanceRecord
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /attendance [post]
func (h *Handler) RecordAttendance(c *gin.Context) {
	var req CreateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rec, err := h.Service.RecordAttendance(c.Request.Context(), req.PersonID, req.EventID, middleware.GetIPFromContext(c))
	if err != nil {
		respondAttendanceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// DeleteAttendance godoc
// @Summary Delete an attendance record
// @Tags attendance
// @Produce json
// @Param id path int true "Attendance record ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /attendance/{id} [delete]
func (h *Handler) DeleteAttendance(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid attendance id"})
		return
	}
	if svcErr := h.Service.Delete(c.Request.Context(), uint(id), middleware.GetIPFromContext(c)); svcErr != nil {
		respondAttendanceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "attendance record deleted"})
}

// ListByEvent godoc
// @Summary List attendance for an event with names
// @Tags attendance
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {array} AttendanceWithName
// @Failure 404 {object} map[string]string
// @Router /events/{id}/attendance [get]
func (h *Handler) ListByEvent(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}
	rows, svcErr := h.Service.ListByEvent(c.Request.Context(), uint(id))
	if svcErr != nil {
		respondAttendanceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// ListByPerson godoc
// @Summary List a person's attendance history
// @Tags attendance
// @Produce json
// @Param id path int true "Person ID"
// @Success 200 {array} AttendanceRecord
// @Failure 404 {object} map[string]string
// @Router /people/{id}/attendance [get]
func (h *Handler) ListByPerson(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid person id"})
		return
	}
	recs, svcErr := h.Service.ListByPerson(c.Request.Context(), uint(id))
	if svcErr != nil {
		respondAttendanceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, recs)
}
