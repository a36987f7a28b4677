package smallgroup

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

func parseParamID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(id), true
}

func respondGroupError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrGroupNotFound), errors.Is(err, ErrPersonNotFound),
		errors.Is(err, ErrMembershipNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, ErrAlreadyMember), errors.Is(err, ErrAlreadyLeader):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "small group operation failed"})
	}
}

// ListGroups godoc
// @Summary List small groups
// @Tags small-groups
// @Produce json
// @Success 200 {array} SmallGroup
// @Router /small-groups [get]
func (h *Handler) ListGroups(c *gin.Context) {
	groups, err := h.Service.ListGroups(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch small groups"})
		return
	}
	c.JSON(http.StatusOK, groups)
}

// GetGroup godoc
// @Summary Get a small group by ID
// @Tags small-groups
// @Produce json
// @Param id path int true "Small group ID"
// @Success 200 {object} SmallGroup
// @Failure 404 {object} map[string]string
// @Router /small-groups/{id} [get]
func (h *Handler) GetGroup(c *gin.Context) {
	id, ok := parseParamID(c, "id")
	if !ok {
		return
	}
	g, err := h.Service.GetGroup(c.Request.Context(), id)
	if err != nil {
		respondGroupError(c, err)
		return
	}
	c.JSON(http.StatusOK, g)
}

// CreateGroup godoc
// @Summary Create a small group
// @Tags small-groups
// @Accept json
// @Produce json
// @Param group body CreateSmallGroupRequest true "Group details"
// @Success 201 {object} SmallGroup
// @Failure 400 {object} map[string]string
// @Router /small-groups [post]
func (h *Handler) CreateGroup(c *gin.Context) {
	var req CreateSmallGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	g, err := h.Service.CreateGroup(c.Request.Context(), &req, middleware.GetIPFromContext(c))
	if err != nil {
		respondGroupError(c, err)
		return
	}
	c.JSON(http.StatusCreated, g)
}

// UpdateGroup godoc
// @Summary Rename a small group
// @Tags small-groups
// @Accept json
// @Produce json
// @Param id path int true "Small group ID"
// @Param group body UpdateSmallGroupRequest true "New name"
// @Success 200 {object} SmallGroup
// @Failure 404 {object} map[string]string
// @Router /small-groups/{id} [put]
func (h *Handler) UpdateGroup(c *gin.Context) {
	id, ok := parseParamID(c, "id")
	if !ok {
		return
	}
	var req UpdateSmallGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	g, err := h.Service.UpdateGroup(c.Request.Context(), id, &req, middleware.GetIPFromContext(c))
	if err != nil {
		respondGroupError(c, err)
		return
	}
	c.JSON(http.StatusOK, g)
}

// DeleteGroup godoc
// @Summary Delete a small group and its memberships
// @Tags small-groups
// @Produce json
// @Param id path int true "Small group ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /small-groups/{id} [delete]
func (h *Handler) DeleteGroup(c *gin.Context) {
	id, ok := parseParamID(c, "id")
	if !ok {
		return
	}
	if err := h.Service.DeleteGroup(c.Request.Context(), id, middleware.GetIPFromContext(c)); err != nil {
		respondGroupError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "small group deleted"})
}

// ListMembers godoc
// @Summary List group members with names
// @Tags small-groups
// @Produce json
// @Param id path int true "Small group ID"
// @Success 200 {array} GroupPerson
// @Failure 404 {object} map[string]string
// @Router /small-groups/{id}/members [get]
func (h *Handler) ListMembers(c *gin.Context) {
	id, ok := parseParamID(c, "id")
	if !ok {
		return
	}
	members, err := h.Service.ListMembers(c.Request.Context(), id)
	if err != nil {
		respondGroupError(c, err)
		return
	}
	c.JSON(http.StatusOK, members)
}

// AddMember godoc
// @Summary Add a member to a group
// @Tags small-groups
// @Accept json
// @Produce json
// @Param id path int true "Small group ID"
// @Param member body AddGroupPersonRequest true "Person to add"
// @Success 201 {object} SmallGroupMember
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /small-groups/{id}/members [post]
func (h *Handler) AddMember(c *gin.Context) {
	id, ok := parseParamID(c, "id")
	if !ok {
		return
	}
	var req AddGroupPersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	m, err := h.Service.AddMember(c.Request.Context(), id, req.PersonID, middleware.GetIPFromContext(c))
	if err != nil {
		respondGroupError(c, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

// RemoveMember godoc
// @Summary Remove a member from a group
// @Tags small-groups
// @Produce json
// @Param id path int true "Small group ID"
// @Param membershipId path int true "Membership ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /small-groups/{id}/members/{membershipId} [delete]
func (h *Handler) RemoveMember(c *gin.Context) {
	id, ok := parseParamID(c, "id")
	if !ok {
		return
	}
	membershipID, ok := parseParamID(c, "membershipId")
	if !ok {
		return
	}
	if err := h.Service.RemoveMember(c.Request.Context(), id, membershipID, middleware.GetIPFromContext(c)); err != nil {
		respondGroupError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "member removed"})
}

// ListLeaders godoc
// @Summary List group leaders with names
// @Tags small-groups
// @Produce json
// @Param id path int true "Small group ID"
// @Success 200 {array} GroupPerson
// @Failure 404 {object} map[string]string
// @Router /small-groups/{id}/leaders [get]
func (h *Handler) ListLeaders(c *gin.Context) {
	id, ok := parseParamID(c, "id")
	if !ok {
		return
	}
	leaders, err := h.Service.ListLeaders(c.Request.Context(), id)
	if err != nil {
		respondGroupError(c, err)
		return
	}
	c.JSON(http.StatusOK, leaders)
}

// AddLeader godoc
// @Summary Add a leader to a group
// @Tags small-groups
// @Accept json
// @Produce json
// @Param id path int true "Small group ID"
// @Param leader body AddGroupPersonRequest true "Person to add"
// @Success 201 {object} SmallGroupLeader
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /small-groups/{id}/leaders [post]
func (h *Handler) AddLeader(c *gin.Context) {
	id, ok := parseParamID(c, "id")
	if !ok {
		return
	}
	var req AddGroupPersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	l, err := h.Service.AddLeader(c.Request.Context(), id, req.PersonID, middleware.GetIPFromContext(c))
	if err != nil {
		respondGroupError(c, err)
		return
	}
	c.JSON(http.StatusCreated, l)
}

// RemoveLeader godoc
// @Summary Remove a leader from a group
// @Tags small-groups
// @Produce json
// @Param id path int true "Small group ID"
// @Param membershipId path int true "Membership ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /small-groups/{id}/leaders/{membershipId} [delete]
func (h *Handler) RemoveLeader(c *gin.Context) {
	id, ok := parseParamID(c, "id")
	if !ok {
		return
	}
	membershipID, ok := parseParamID(c, "membershipId")
	if !ok {
		return
	}
	if err := h.Service.RemoveLeader(c.Request.Context(), id, membershipID, middleware.GetIPFromContext(c)); err != nil {
		respondGroupError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "leader removed"})
}
