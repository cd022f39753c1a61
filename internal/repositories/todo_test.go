package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"go-memo-todo/internal/models"
	"go-memo-todo/internal/repositories"
)

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func TestTodoRepository_Create(t *testing.T) {
	repo := repositories.NewTodoRepository()

	created := repo.Create(&models.TodoInput{Title: "Buy milk", Completed: false})

	require.NotEmpty(t, created.ID)
	require.Equal(t, "Buy milk", created.Title)
	require.Nil(t, created.Description)
	require.False(t, created.Completed)
	require.True(t, created.CreatedAt.Equal(created.UpdatedAt))

	other := repo.Create(&models.TodoInput{Title: "Buy bread"})
	require.NotEqual(t, created.ID, other.ID, "Expected unique IDs")
}

func TestTodoRepository_FindByID(t *testing.T) {
	repo := repositories.NewTodoRepository()
	created := repo.Create(&models.TodoInput{Title: "Buy milk"})

	found, err := repo.FindByID(created.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, found.ID)

	_, err = repo.FindByID("no-such-id")
	require.ErrorIs(t, err, models.ErrTodoNotFound)
}

func TestTodoRepository_FindAll(t *testing.T) {
	repo := repositories.NewTodoRepository()
	require.Empty(t, repo.FindAll())

	repo.Create(&models.TodoInput{Title: "Todo 1"})
	repo.Create(&models.TodoInput{Title: "Todo 2"})
	require.Len(t, repo.FindAll(), 2)
}

func TestTodoRepository_Update(t *testing.T) {
	repo := repositories.NewTodoRepository()
	created := repo.Create(&models.TodoInput{
		Title:       "Buy milk",
		Description: strPtr("Milk, eggs, bread"),
	})

	t.Run("applies only fields present in the patch", func(t *testing.T) {
		updated, err := repo.Update(created.ID, &models.TodoPatch{Completed: boolPtr(true)})
		require.NoError(t, err)
		require.Equal(t, "Buy milk", updated.Title)
		require.NotNil(t, updated.Description)
		require.Equal(t, "Milk, eggs, bread", *updated.Description)
		require.True(t, updated.Completed)
		require.True(t, updated.CreatedAt.Equal(created.CreatedAt))
		require.False(t, updated.UpdatedAt.Before(updated.CreatedAt))
	})

	t.Run("empty patch refreshes updated_at only", func(t *testing.T) {
		updated, err := repo.Update(created.ID, &models.TodoPatch{})
		require.NoError(t, err)
		require.Equal(t, "Buy milk", updated.Title)
		require.True(t, updated.Completed)
	})

	t.Run("unknown id fails and leaves the store untouched", func(t *testing.T) {
		_, err := repo.Update("no-such-id", &models.TodoPatch{Title: strPtr("x")})
		require.ErrorIs(t, err, models.ErrTodoNotFound)
		require.Len(t, repo.FindAll(), 1)
	})
}

func TestTodoRepository_Delete(t *testing.T) {
	repo := repositories.NewTodoRepository()
	created := repo.Create(&models.TodoInput{Title: "Buy milk"})

	require.NoError(t, repo.Delete(created.ID))
	require.ErrorIs(t, repo.Delete(created.ID), models.ErrTodoNotFound)
}

func TestTodoRepository_DeleteAll(t *testing.T) {
	repo := repositories.NewTodoRepository()
	repo.Create(&models.TodoInput{Title: "Todo 1"})
	repo.Create(&models.TodoInput{Title: "Todo 2"})

	require.Equal(t, 2, repo.DeleteAll())
	require.Empty(t, repo.FindAll())
	require.Equal(t, 0, repo.DeleteAll(), "DeleteAll on an empty store succeeds with zero count")
}

// 返されたTodoを書き換えてもストア内の値が変わらないこと
func TestTodoRepository_ReturnsCopies(t *testing.T) {
	repo := repositories.NewTodoRepository()
	created := repo.Create(&models.TodoInput{Title: "Buy milk", Description: strPtr("Milk")})

	created.Title = "mutated"
	*created.Description = "mutated"

	stored, err := repo.FindByID(created.ID)
	require.NoError(t, err)
	require.Equal(t, "Buy milk", stored.Title)
	require.Equal(t, "Milk", *stored.Description)
}
