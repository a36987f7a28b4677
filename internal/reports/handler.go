package reports

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{Service: s}
}

func sendReport(c *gin.Context, data []byte, filename, contentType string) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, data)
}

// ExportEventRoster godoc
// @Summary Download the registration roster for an event
// @Tags reports
// @Produce octet-stream
// @Param id path int true "Event ID"
// @Param format query string false "csv, excel, or pdf (default csv)"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]string
// @Router /reports/events/{id}/roster [get]
func (h *Handler) ExportEventRoster(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}
	format := c.DefaultQuery("format", FormatCSV)

	data, filename, contentType, svcErr := h.Service.ExportEventRoster(c.Request.Context(), uint(id), format)
	if svcErr != nil {
		if errors.Is(svcErr, ErrEventNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": svcErr.Error()})
		return
	}
	sendReport(c, data, filename, contentType)
}

// ExportAttendanceHistory godoc
// @Summary Download a person's attendance history
// @Tags reports
// @Produce octet-stream
// @Param id path int true "Person ID"
// @Param format query string false "csv, excel, or pdf (default csv)"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]string
// @Router /reports/people/{id}/attendance [get]
func (h *Handler) ExportAttendanceHistory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid person id"})
		return
	}
	format := c.DefaultQuery("format", FormatCSV)

	data, filename, contentType, svcErr := h.Service.ExportAttendanceHistory(c.Request.Context(), uint(id), format)
	if svcErr != nil {
		if errors.Is(svcErr, ErrPersonNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "person not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": svcErr.Error()})
		return
	}
	sendReport(c, data, filename, contentType)
}
