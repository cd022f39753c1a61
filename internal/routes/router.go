// Package routesはroutingを行います。
package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-memo-todo/internal/handlers"
	"go-memo-todo/internal/repositories"
	"go-memo-todo/internal/services"
)

// SetupRouter はGinルーターをセットアップし、すべてのエンドポイントを登録します。
// ストアは呼び出し側が所有し、プロセスのライフサイクルに紐づきます。
func SetupRouter(logger *zap.Logger, staticDir string, todoRepo *repositories.TodoRepository) *gin.Engine {
	r := gin.New()
	r.Use(RequestLogger(logger))
	r.Use(Recovery(logger))

	// CORS対策 (すべてのオリジンを許可)
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	r.Use(cors.New(config))

	// サービス
	todoService := services.NewTodoService(todoRepo)

	// ハンドラー
	todoHandler := handlers.NewTodoHandler(todoService)

	// ルーティング
	r.GET("/health", handlers.HealthHandler)
	r.GET("/todos", todoHandler.GetTodosHandler)
	r.GET("/todos/:id", todoHandler.GetTodoByIDHandler)
	r.POST("/todos", todoHandler.CreateTodoHandler)
	r.PUT("/todos/:id", todoHandler.UpdateTodoHandler)
	r.DELETE("/todos/:id", todoHandler.DeleteTodoHandler)
	r.DELETE("/todos", todoHandler.DeleteAllTodosHandler)

	// 静的なランディングページ
	r.StaticFile("/", staticDir+"/index.html")

	return r
}
