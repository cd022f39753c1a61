// Package handlers はHTTPリクエストを処理するハンドラーを提供します。
package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-memo-todo/internal/models"
	"go-memo-todo/internal/services"
)

// TodoHandler はTodo関連のハンドラーを管理します。
type TodoHandler struct {
	todoService *services.TodoService
}

// NewTodoHandler は新しいTodoHandlerを作成します。
func NewTodoHandler(todoService *services.TodoService) *TodoHandler {
	return &TodoHandler{todoService: todoService}
}

// CreateTodoHandler は新しいTodoを作成します。成功時は201を返します。
func (h *TodoHandler) CreateTodoHandler(c *gin.Context) {
	var req models.CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	createdTodo, err := h.todoService.CreateTodo(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, createdTodo)
}

// GetTodosHandler はすべてのTodoを取得します。
func (h *TodoHandler) GetTodosHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.todoService.GetTodos())
}

// GetTodoByIDHandler は指定IDのTodoを取得します。
func (h *TodoHandler) GetTodoByIDHandler(c *gin.Context) {
	todo, err := h.todoService.GetTodoByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, todo)
}

// UpdateTodoHandler は指定IDのTodoを部分更新します。
// ボディに存在するフィールドのみ変更されます。
func (h *TodoHandler) UpdateTodoHandler(c *gin.Context) {
	id := c.Param("id")

	// 存在確認をボディ解析より先に行う (存在しないIDは404を優先)
	if _, err := h.todoService.GetTodoByID(id); err != nil {
		respondError(c, err)
		return
	}

	var req models.UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	// 空のJSONオブジェクトはボディ欠落と同じ扱い
	if req.IsEmpty() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Request body is required"})
		return
	}

	updatedTodo, err := h.todoService.UpdateTodo(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updatedTodo)
}

// DeleteTodoHandler は指定IDのTodoを削除します。
func (h *TodoHandler) DeleteTodoHandler(c *gin.Context) {
	if err := h.todoService.DeleteTodo(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Todo deleted successfully"})
}

// DeleteAllTodosHandler はすべてのTodoを削除します。常に成功します。
func (h *TodoHandler) DeleteAllTodosHandler(c *gin.Context) {
	h.todoService.DeleteAllTodos()
	c.JSON(http.StatusOK, gin.H{"message": "All todos deleted successfully"})
}

// respondBindError はJSONボディの解析エラーを400に変換します。
// ボディ欠落とJSON不正を区別してメッセージを返します。
func respondBindError(c *gin.Context, err error) {
	if errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Request body is required"})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
}

// respondError はサービス層のエラーをHTTPステータスに変換します。
// ValidationError→400、ErrTodoNotFound→404、それ以外→500。
func respondError(c *gin.Context, err error) {
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation error", "details": verr.Details})
		return
	}
	if errors.Is(err, models.ErrTodoNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
