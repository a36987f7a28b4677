package summary

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

// GetComprehensiveEventSummary godoc
// @Summary Comprehensive event summary across all stores
// @Description Merges registration counts, live check-ins, and note counts; optional stores degrade to zero with source "unavailable"
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} ComprehensiveEventSummary
// @Failure 404 {object} map[string]string
// @Router /events/{id}/summary [get]
func (h *Handler) GetComprehensiveEventSummary(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	result, svcErr := h.Service.GetComprehensiveEventSummary(c.Request.Context(), uint(id))
	if svcErr != nil {
		if errors.Is(svcErr, ErrEventNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build event summary"})
		return
	}

	c.JSON(http.StatusOK, result)
}
