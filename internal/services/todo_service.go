// Package services はTodoのビジネスロジックを提供します。
package services

import (
	"go-memo-todo/internal/models"
	"go-memo-todo/internal/repositories"
)

// TodoService はTodo関連のビジネスロジックを扱います。
// リクエストのバリデーション・正規化を行ってからリポジトリを呼び出します。
type TodoService struct {
	todoRepo *repositories.TodoRepository
}

// NewTodoService は新しいTodoServiceを作成します。
func NewTodoService(todoRepo *repositories.TodoRepository) *TodoService {
	return &TodoService{todoRepo: todoRepo}
}

// CreateTodo はリクエストを検証し、新しいTodoを作成します。
func (s *TodoService) CreateTodo(req *models.CreateTodoRequest) (*models.Todo, error) {
	input, err := req.Validate()
	if err != nil {
		return nil, err
	}
	return s.todoRepo.Create(input), nil
}

// GetTodos はすべてのTodoを取得します。
func (s *TodoService) GetTodos() []*models.Todo {
	return s.todoRepo.FindAll()
}

// GetTodoByID は指定IDのTodoを取得します。
func (s *TodoService) GetTodoByID(id string) (*models.Todo, error) {
	return s.todoRepo.FindByID(id)
}

// UpdateTodo はリクエストを検証し、指定IDのTodoを部分更新します。
// 存在しないIDの場合、ストアは変更されません。
func (s *TodoService) UpdateTodo(id string, req *models.UpdateTodoRequest) (*models.Todo, error) {
	patch, err := req.Validate()
	if err != nil {
		return nil, err
	}
	return s.todoRepo.Update(id, patch)
}

// DeleteTodo は指定IDのTodoを削除します。
func (s *TodoService) DeleteTodo(id string) error {
	return s.todoRepo.Delete(id)
}

// DeleteAllTodos はすべてのTodoを削除し、削除件数を返します。
func (s *TodoService) DeleteAllTodos() int {
	return s.todoRepo.DeleteAll()
}
