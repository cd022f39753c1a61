// Package testutil はテストで共有するルーターのセットアップとヘルパーを提供します。
package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-memo-todo/internal/models"
	"go-memo-todo/internal/repositories"
	"go-memo-todo/internal/routes"
)

// SetupTestRouter はテスト用のGinルーターとインメモリストアをセットアップします。
// ストアはテストごとに空の状態から始まります。
func SetupTestRouter(t *testing.T) (*gin.Engine, *repositories.TodoRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	// ランディングページ用の仮の静的ディレクトリ
	staticDir := t.TempDir()
	indexHTML := []byte("<!DOCTYPE html><html><body><h1>Todo API</h1></body></html>")
	err := os.WriteFile(filepath.Join(staticDir, "index.html"), indexHTML, 0o644)
	require.NoError(t, err)

	todoRepo := repositories.NewTodoRepository()
	router := routes.SetupRouter(zap.NewNop(), staticDir, todoRepo)
	return router, todoRepo
}

// DoRequest はJSONボディ付きのリクエストをルーターに流し、レコーダーを返します。
// bodyがnilの場合はボディなしで送信します。
func DoRequest(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(raw)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

// CreateTestTodo はテスト用のTODOをAPI経由で作成します。
func CreateTestTodo(t *testing.T, router *gin.Engine, title string, completed bool) *models.Todo {
	t.Helper()

	resp := DoRequest(t, router, http.MethodPost, "/todos", map[string]interface{}{
		"title":     title,
		"completed": completed,
	})
	require.Equal(t, http.StatusCreated, resp.Code, "TODO作成に失敗しました: %s", resp.Body.String())

	var createdTodo models.Todo
	err := json.Unmarshal(resp.Body.Bytes(), &createdTodo)
	require.NoError(t, err)
	return &createdTodo
}
