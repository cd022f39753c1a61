// Package modelsはTodoと関連するエラー型を定義します。
package models

import (
	"errors"
	"strings"
	"time"
)

// Todo はToDoタスクの構造体を表します。
// JSONタグ: クライアントとの通信用 (レスポンス形式は固定)
type Todo struct {
	ID          string    `json:"id"`          // サーバー側で生成されるUUID (作成後は不変)
	Title       string    `json:"title"`       // タスクのタイトル（トリム後1〜200文字、必須）
	Description *string   `json:"description"` // タスクの説明 (省略可能。未設定の場合はJSONでnull)
	Completed   bool      `json:"completed"`   // 完了状態
	CreatedAt   time.Time `json:"created_at"`  // 作成日時 (作成後は不変)
	UpdatedAt   time.Time `json:"updated_at"`  // 更新日時 (更新が成功するたびに刷新)
}

// ErrTodoNotFound はTODOが見つからない場合のエラーです。
var ErrTodoNotFound = errors.New("todo not found")

// FieldError はバリデーションに失敗したフィールドとその理由を表します。
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError は1回のリクエストで発生したすべてのフィールドエラーをまとめます。
// 最初のエラーで打ち切らず、フィールドごとに収集します。
type ValidationError struct {
	Details []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Details))
	for _, d := range e.Details {
		msgs = append(msgs, d.Field+": "+d.Message)
	}
	if len(msgs) == 0 {
		return "validation error"
	}
	return "validation error: " + strings.Join(msgs, "; ")
}
