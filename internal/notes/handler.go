package notes

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

func respondNotesError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	case errors.Is(err, ErrEventTypeNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "document store operation failed"})
	}
}

func parseNoteParentID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// ===========================
// 🏷 Event Types

// UpsertEventType godoc
// @Summary Create or replace an event type
// @Tags event-types
// @Accept json
// @Produce json
// @Param eventType body UpsertEventTypeRequest true "Event type"
// @Success 200 {object} EventType
// @Failure 503 {object} map[string]string
// @Router /event-types [put]
func (h *Handler) UpsertEventType(c *gin.Context) {
	var req UpsertEventTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	et, err := h.Service.UpsertEventType(c.Request.Context(), &req, middleware.GetIPFromContext(c))
	if err != nil {
		respondNotesError(c, err)
		return
	}
	c.JSON(http.StatusOK, et)
}

// GetEventType godoc
// @Summary Get an event type by name
// @Tags event-types
// @Produce json
// @Param name path string true "Event type name"
// @Success 200 {object} EventType
// @Failure 404 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /event-types/{name} [get]
func (h *Handler) GetEventType(c *gin.Context) {
	et, err := h.Service.GetEventType(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondNotesError(c, err)
		return
	}
	c.JSON(http.StatusOK, et)
}

// ListEventTypes godoc
// @Summary List event types
// @Tags event-types
// @Produce json
// @Success 200 {array} EventType
// @Failure 503 {object} map[string]string
// @Router /event-types [get]
func (h *Handler) ListEventTypes(c *gin.Context) {
	types, err := h.Service.ListEventTypes(c.Request.Context())
	if err != nil {
		respondNotesError(c, err)
		return
	}
	c.JSON(http.StatusOK, types)
}

// DeleteEventType godoc
// @Summary Delete an event type
// @Tags event-types
// @Produce json
// @Param name path string true "Event type name"
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /event-types/{name} [delete]
func (h *Handler) DeleteEventType(c *gin.Context) {
	if err := h.Service.DeleteEventType(c.Request.Context(), c.Param("name"), middleware.GetIPFromContext(c)); err != nil {
		respondNotesError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "event type deleted"})
}

// ===========================
// 📝 Person Notes

// AddPersonNote godoc
// @Summary Add a note to a person
// @Tags notes
// @Accept json
// @Produce json
// @Param id path int true "Person ID"
// @Param note body CreatePersonNoteRequest true "Note"
// @Success 201 {object} PersonNote
// @Failure 503 {object} map[string]string
// @Router /people/{id}/notes [post]
func (h *Handler) AddPersonNote(c *gin.Context) {
	personID, ok := parseNoteParentID(c)
	if !ok {
		return
	}
	var req CreatePersonNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	n, err := h.Service.AddPersonNote(c.Request.Context(), personID, &req, middleware.GetIPFromContext(c))
	if err != nil {
		respondNotesError(c, err)
		return
	}
	c.JSON(http.StatusCreated, n)
}

// ListPersonNotes godoc
// @Summary List a person's notes
// @Tags notes
// @Produce json
// @Param id path int true "Person ID"
// @Success 200 {array} PersonNote
// @Failure 503 {object} map[string]string
// @Router /people/{id}/notes [get]
func (h *Handler) ListPersonNotes(c *gin.Context) {
	personID, ok := parseNoteParentID(c)
	if !ok {
		return
	}
	list, err := h.Service.ListPersonNotes(c.Request.Context(), personID)
	if err != nil {
		respondNotesError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// DeletePersonNote godoc
// @Summary Delete a person note
// @Tags notes
// @Produce json
// @Param noteId path string true "Note ID"
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /notes/person/{noteId} [delete]
func (h *Handler) DeletePersonNote(c *gin.Context) {
	if err := h.Service.DeletePersonNote(c.Request.Context(), c.Param("noteId"), middleware.GetIPFromContext(c)); err != nil {
		respondNotesError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "note deleted"})
}

// ===========================
// ☎️ Parent Contacts

// AddParentContact godoc
// @Summary Record a parent contact for a person
// @Tags notes
// @Accept json
// @Produce json
// @Param id path int true "Person ID"
// @Param contact body CreateParentContactRequest true "Contact"
// @Success 201 {object} ParentContact
// @Failure 503 {object} map[string]string
// @Router /people/{id}/parent-contacts [post]
func (h *Handler) AddParentContact(c *gin.Context) {
	personID, ok := parseNoteParentID(c)
	if !ok {
		return
	}
	var req CreateParentContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	pc, err := h.Service.AddParentContact(c.Request.Context(), personID, &req, middleware.GetIPFromContext(c))
	if err != nil {
		respondNotesError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pc)
}

// ListParentContacts godoc
// @Summary List parent contacts for a person
// @Tags notes
// @Produce json
// @Param id path int true "Person ID"
// @Success 200 {array} ParentContact
// @Failure 503 {object} map[string]string
// @Router /people/{id}/parent-contacts [get]
func (h *Handler) ListParentContacts(c *gin.Context) {
	personID, ok := parseNoteParentID(c)
	if !ok {
		return
	}
	list, err := h.Service.ListParentContacts(c.Request.Context(), personID)
	if err != nil {
		respondNotesError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// DeleteParentContact godoc
// @Summary Delete a parent contact record
// @Tags notes
// @Produce json
// @Param contactId path string true "Contact ID"
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /notes/parent-contact/{contactId} [delete]
func (h *Handler) DeleteParentContact(c *gin.Context) {
	if err := h.Service.DeleteParentContact(c.Request.Context(), c.Param("contactId"), middleware.GetIPFromContext(c)); err != nil {
		respondNotesError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "parent contact deleted"})
}

// ===========================
// 📋 Event Notes

// AddEventNote godoc
// @Summary Add a debrief note to an event
// @Tags notes
// @Accept json
// @Produce json
// @Param id path int true "Event ID"
// @Param note body CreateEventNoteRequest true "Note"
// @Success 201 {object} EventNote
// @Failure 503 {object} map[string]string
// @Router /events/{id}/notes [post]
func (h *Handler) AddEventNote(c *gin.Context) {
	eventID, ok := parseNoteParentID(c)
	if !ok {
		return
	}
	var req CreateEventNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	n, err := h.Service.AddEventNote(c.Request.Context(), eventID, &req, middleware.GetIPFromContext(c))
	if err != nil {
		respondNotesError(c, err)
		return
	}
	c.JSON(http.StatusCreated, n)
}

// ListEventNotes godoc
// @Summary List debrief notes for an event
// @Tags notes
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {array} EventNote
// @Failure 503 {object} map[string]string
// @Router /events/{id}/notes [get]
func (h *Handler) ListEventNotes(c *gin.Context) {
	eventID, ok := parseNoteParentID(c)
	if !ok {
		return
	}
	list, err := h.Service.ListEventNotes(c.Request.Context(), eventID)
	if err != nil {
		respondNotesError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// DeleteEventNote godoc
// @Summary Delete an event note
// @Tags notes
// @Produce json
// @Param noteId path string true "Note ID"
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /notes/event/{noteId} [delete]
func (h *Handler) DeleteEventNote(c *gin.Context) {
	if err := h.Service.DeleteEventNote(c.Request.Context(), c.Param("noteId"), middleware.GetIPFromContext(c)); err != nil {
		respondNotesError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "event note deleted"})
}
