package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Health struct {
	conn *gorm.DB
}

func NewHealth(conn *gorm.DB) *Health {
	return &Health{conn: conn}
}

func (h *Health) Check(ctx *gin.Context) {
	sqlDB, err := h.conn.DB()

	if err != nil || sqlDB.Ping() != nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"status":    "unavailable",
			"timestamp": time.Now().Format(time.RFC3339),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
