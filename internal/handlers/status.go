package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"olivier/internal/dto"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type StatusHandler struct {
	db Pinger
}

func NewStatusHandler(db Pinger) *StatusHandler {
	return &StatusHandler{db: db}
}

// State 依赖服务状态
//
//	@Summary	Dependency status
//	@Tags		Service
//	@Produce	json
//	@Success	200	{object}	dto.ServiceStatusResponse
//	@Router		/state [get]
func (h *StatusHandler) State(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	ok := true
	if err := h.db.Ping(ctx); err != nil {
		slog.WarnContext(ctx, "database ping failed", "err", err)
		ok = false
	}
	c.JSON(http.StatusOK, dto.ServiceStatusResponse{Database: ok})
}
