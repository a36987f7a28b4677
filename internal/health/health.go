package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/mkelley412/youth-group-backend/utils"
)

const checkTimeout = 2 * time.Second

// StoreStatus reports one backing store's reachability.
type StoreStatus struct {
	Status string `json:"status"` // "ok", "down", or "disabled"
	Error  string `json:"error,omitempty"`
}

type DetailedHealth struct {
	Status    string                 `json:"status"`
	Stores    map[string]StoreStatus `json:"stores"`
	Timestamp time.Time              `json:"timestamp"`
}

type Handler struct {
	db    *gorm.DB
	redis *redis.Client
}

func NewHandler(db *gorm.DB, redisClient *redis.Client) *Handler {
	return &Handler{db: db, redis: redisClient}
}

// Basic godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /healthz [get]
func (h *Handler) Basic(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Detailed godoc
// @Summary Readiness probe with per-store checks
// @Description Reports the relational store plus each optional store; only a relational failure makes the overall status degraded
// @Tags health
// @Produce json
// @Success 200 {object} DetailedHealth
// @Success 503 {object} DetailedHealth
// @Router /health/detailed [get]
func (h *Handler) Detailed(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), checkTimeout)
	defer cancel()

	stores := map[string]StoreStatus{
		"postgres":  h.checkPostgres(ctx),
		"redis":     h.checkRedis(ctx),
		"firestore": h.checkFirestore(),
		"kafka":     h.checkKafka(),
	}

	status := "ok"
	code := http.StatusOK
	if stores["postgres"].Status != "ok" {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, DetailedHealth{
		Status:    status,
		Stores:    stores,
		Timestamp: time.Now().UTC(),
	})
}

func (h *Handler) checkPostgres(ctx context.Context) StoreStatus {
	sqlDB, err := h.db.DB()
	if err != nil {
		return StoreStatus{Status: "down", Error: err.Error()}
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return StoreStatus{Status: "down", Error: err.Error()}
	}
	return StoreStatus{Status: "ok"}
}

func (h *Handler) checkRedis(ctx context.Context) StoreStatus {
	if h.redis == nil {
		return StoreStatus{Status: "disabled"}
	}
	if err := h.redis.Ping(ctx).Err(); err != nil {
		return StoreStatus{Status: "down", Error: err.Error()}
	}
	return StoreStatus{Status: "ok"}
}

func (h *Handler) checkFirestore() StoreStatus {
	if !utils.IsFirestoreEnabled() {
		status := StoreStatus{Status: "disabled"}
		if err := utils.GetInitError(); err != nil {
			status.Error = err.Error()
		}
		return status
	}
	return StoreStatus{Status: "ok"}
}

func (h *Handler) checkKafka() StoreStatus {
	if !utils.IsKafkaEnabled() {
		return StoreStatus{Status: "disabled"}
	}
	return StoreStatus{Status: "ok"}
}
