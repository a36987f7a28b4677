package person

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

func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(id), true
}

// ===========================
// 👤 List People - GET /people
// @Summary List all people
// @Tags Person
// @Produce json
// @Success 200 {array} Person
// @Router /api/v1/people [get]
func (h *Handler) ListPeople(c *gin.Context) {
	people, err := h.Service.ListPeople(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch people: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, people)
}

// ===========================
// 🔍 Get Person - GET /people/:id
func (h *Handler) GetPerson(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	p, err := h.Service.GetPerson(c.Request.Context(), id)
	if errors.Is(err, ErrPersonNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "person not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

// ===========================
// 🎯 Create Person - POST /people
func (h *Handler) CreatePerson(c *gin.Context) {
	var req CreatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	p, err := h.Service.CreatePerson(c.Request.Context(), &req, middleware.GetIPFromContext(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create person: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, p)
}

// ===========================
// 🛠 Update Person - PATCH /people/:id
func (h *Handler) UpdatePerson(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req UpdatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	p, err := h.Service.UpdatePerson(c.Request.Context(), id, &req, middleware.GetIPFromContext(c))
	if errors.Is(err, ErrPersonNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "person not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update person: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

// ===========================
// ❌ Delete Person - DELETE /people/:id
func (h *Handler) DeletePerson(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	err := h.Service.DeletePerson(c.Request.Context(), id, middleware.GetIPFromContext(c))
	switch {
	case errors.Is(err, ErrPersonNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "person not found"})
	case errors.Is(err, ErrPersonHasRoles):
		c.JSON(http.StatusConflict, gin.H{"error": "detach role records before deleting this person"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete person: " + err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "person deleted"})
	}
}

// ===========================
// 🎭 Roles - GET /people/:id/roles
func (h *Handler) GetRoles(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	roles, err := h.Service.GetRoles(c.Request.Context(), id)
	if errors.Is(err, ErrPersonNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "person not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, roles)
}

// POST /people/:id/roles/attendee
func (h *Handler) AddAttendeeRole(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req AddAttendeeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	a, err := h.Service.AddAttendeeRole(c.Request.Context(), id, req.Guardian, middleware.GetIPFromContext(c))
	h.respondRole(c, a, err)
}

// POST /people/:id/roles/leader
func (h *Handler) AddLeaderRole(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	l, err := h.Service.AddLeaderRole(c.Request.Context(), id, middleware.GetIPFromContext(c))
	h.respondRole(c, l, err)
}

// POST /people/:id/roles/volunteer
func (h *Handler) AddVolunteerRole(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	v, err := h.Service.AddVolunteerRole(c.Request.Context(), id, middleware.GetIPFromContext(c))
	h.respondRole(c, v, err)
}

func (h *Handler) respondRole(c *gin.Context, role interface{}, err error) {
	switch {
	case errors.Is(err, ErrPersonNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "person not found"})
	case errors.Is(err, ErrDuplicateRole):
		c.JSON(http.StatusConflict, gin.H{"error": "person already holds this role"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add role: " + err.Error()})
	default:
		c.JSON(http.StatusCreated, role)
	}
}

// DELETE /attendees/:id, /leaders/:id, /volunteers/:id
func (h *Handler) RemoveAttendeeRole(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	h.respondRemoval(c, h.Service.RemoveAttendeeRole(c.Request.Context(), id, middleware.GetIPFromContext(c)))
}

func (h *Handler) RemoveLeaderRole(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	h.respondRemoval(c, h.Service.RemoveLeaderRole(c.Request.Context(), id, middleware.GetIPFromContext(c)))
}

func (h *Handler) RemoveVolunteerRole(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	h.respondRemoval(c, h.Service.RemoveVolunteerRole(c.Request.Context(), id, middleware.GetIPFromContext(c)))
}

func (h *Handler) respondRemoval(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrRoleNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "role record not found"})
	case errors.Is(err, ErrRoleInUse):
		c.JSON(http.StatusConflict, gin.H{"error": "role record is referenced by a registration; delete the registration first"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove role: " + err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "role removed"})
	}
}
