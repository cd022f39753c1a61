package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler は死活監視用のエンドポイントです。
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
