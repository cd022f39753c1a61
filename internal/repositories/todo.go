// Package repositories はTodoの保存と取得を行うリポジトリを提供します。
package repositories

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"go-memo-todo/internal/models"
)

// TodoRepository はインメモリのTodoストアです。
// マップはプロセス起動時に空で、終了時に破棄されます（永続化なし）。
// net/httpはリクエストを並行に処理するため、全操作を単一のRWMutexで直列化します。
type TodoRepository struct {
	mu    sync.RWMutex
	todos map[string]*models.Todo
}

// NewTodoRepository は新しい空のTodoRepositoryインスタンスを作成します。
func NewTodoRepository() *TodoRepository {
	return &TodoRepository{todos: make(map[string]*models.Todo)}
}

// FindAll はすべてのTodoタスクを取得します。順序は保証されません。
func (r *TodoRepository) FindAll() []*models.Todo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	todos := make([]*models.Todo, 0, len(r.todos))
	for _, t := range r.todos {
		todos = append(todos, cloneTodo(t))
	}
	return todos
}

// FindByID は指定されたIDのTodoタスクを取得します。
func (r *TodoRepository) FindByID(id string) (*models.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.todos[id]
	if !ok {
		return nil, models.ErrTodoNotFound
	}
	return cloneTodo(t), nil
}

// Create は正規化済みの入力から新しいTodoを生成して挿入します。
// IDはUUIDで採番され、created_atとupdated_atには同じ時刻が設定されます。
func (r *TodoRepository) Create(in *models.TodoInput) *models.Todo {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	t := &models.Todo{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		Completed:   in.Completed,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.todos[t.ID] = t
	return cloneTodo(t)
}

// Update は指定されたIDのTodoタスクを部分更新します。
// パッチに存在するフィールドのみ適用し、updated_atを刷新します。
func (r *TodoRepository) Update(id string, patch *models.TodoPatch) (*models.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.todos[id]
	if !ok {
		return nil, models.ErrTodoNotFound
	}

	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Description != nil {
		t.Description = patch.Description
	}
	if patch.Completed != nil {
		t.Completed = *patch.Completed
	}
	t.UpdatedAt = time.Now().UTC()

	return cloneTodo(t), nil
}

// Delete は指定されたIDのTodoタスクを削除します。
func (r *TodoRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.todos[id]; !ok {
		return models.ErrTodoNotFound
	}
	delete(r.todos, id)
	return nil
}

// DeleteAll はすべてのTodoタスクを無条件に削除し、削除件数を返します。
func (r *TodoRepository) DeleteAll() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := len(r.todos)
	r.todos = make(map[string]*models.Todo)
	return count
}

// cloneTodo はロック外に渡すためのコピーを作成します。
func cloneTodo(t *models.Todo) *models.Todo {
	c := *t
	if t.Description != nil {
		desc := *t.Description
		c.Description = &desc
	}
	return &c
}
