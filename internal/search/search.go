package search

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mkelley412/youth-group-backend/internal/event"
	"github.com/mkelley412/youth-group-backend/internal/person"
	"github.com/mkelley412/youth-group-backend/internal/smallgroup"
)

// Results is the free-text search response, one slice per entity.
type Results struct {
	Query       string                  `json:"query"`
	People      []person.Person         `json:"people"`
	Events      []event.Event           `json:"events"`
	SmallGroups []smallgroup.SmallGroup `json:"smallGroups"`
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Search fans a single term out across people, events, and small
// groups with case-insensitive matching.
func (s *Service) Search(ctx context.Context, query string) (*Results, error) {
	results := &Results{
		Query:       query,
		People:      []person.Person{},
		Events:      []event.Event{},
		SmallGroups: []smallgroup.SmallGroup{},
	}
	pattern := "%" + query + "%"

	err := s.db.WithContext(ctx).
		Where("first_name ILIKE ? OR last_name ILIKE ?", pattern, pattern).
		Limit(25).
		Find(&results.People).Error
	if err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).
		Where("name ILIKE ? OR location ILIKE ? OR type ILIKE ?", pattern, pattern, pattern).
		Limit(25).
		Find(&results.Events).Error
	if err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).
		Where("name ILIKE ?", pattern).
		Limit(25).
		Find(&results.SmallGroups).Error
	if err != nil {
		return nil, err
	}

	return results, nil
}

type Handler struct {
	Service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{Service: s}
}

// Search godoc
// @Summary Free-text search across people, events, and small groups
// @Tags search
// @Produce json
// @Param q query string true "Search term"
// @Success 200 {object} Results
// @Failure 400 {object} map[string]string
// @Router /search [get]
func (h *Handler) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter q is required"})
		return
	}

	results, err := h.Service.Search(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
		return
	}
	c.JSON(http.StatusOK, results)
}
