package registration

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

func respondRegistrationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrMissingRole):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, ErrEventNotFound), errors.Is(err, ErrRoleNotFound),
		errors.Is(err, ErrRegistrationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "registration operation failed"})
	}
}

// Register godoc
// @Summary Register a person for an event
// @Description Requires at least one of attendeeId, leaderId, or volunteerId
// @Tags registrations
// @Accept json
// @Produce json
// @Param registration body CreateRegistrationRequest true "Registration details"
// @Success 201 {object} Registration
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /registrations [post]
func (h *Handler) Register(c *gin.Context) {
	var req CreateRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	reg, err := h.Service.Register(c.Request.Context(), &req, middleware.GetIPFromContext(c))
	if err != nil {
		respondRegistrationError(c, err)
		return
	}
	c.JSON(http.StatusCreated, reg)
}

// GetRegistration godoc
// @Summary Get a registration by ID
// @Tags registrations
// @Produce json
// @Param id path int true "Registration ID"
// @Success 200 {object} Registration
// @Failure 404 {object} map[string]string
// @Router /registrations/{id} [get]
func (h *Handler) GetRegistration(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid registration id"})
		return
	}
	reg, svcErr := h.Service.GetByID(c.Request.Context(), uint(id))
	if svcErr != nil {
		respondRegistrationError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, reg)
}

// DeleteRegistration godoc
// @Summary Cancel a registration
// @Tags registrations
// @Produce json
// @Param id path int true "Registration ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /registrations/{id} [delete]
func (h *Handler) DeleteRegistration(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid registration id"})
		return
	}
	if svcErr := h.Service.Delete(c.Request.Context(), uint(id), middleware.GetIPFromContext(c)); svcErr != nil {
		respondRegistrationError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "registration deleted"})
}

// ListByEvent godoc
// @Summary List registrations for an event with names and roles
// @Tags registrations
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {array} RegistrationWithName
// @Failure 404 {object} map[string]string
// @Router /events/{id}/registrations [get]
func (h *Handler) ListByEvent(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}
	rows, svcErr := h.Service.ListByEvent(c.Request.Context(), uint(id))
	if svcErr != nil {
		respondRegistrationError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// CountsByEvent godoc
// @Summary Registration counts for an event, broken down by role
// @Tags registrations
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} RegistrationCounts
// @Failure 404 {object} map[string]string
// @Router /events/{id}/registrations/counts [get]
func (h *Handler) CountsByEvent(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}
	counts, svcErr := h.Service.CountsByEvent(c.Request.Context(), uint(id))
	if svcErr != nil {
		respondRegistrationError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, counts)
}
