package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate はリクエスト検証用の共有バリデータです。
var validate = validator.New()

// CreateTodoRequest はPOST /todosのリクエストボディです。
// ポインタにすることで「キーが存在しない」と「ゼロ値」を区別します。
type CreateTodoRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

// UpdateTodoRequest はPUT /todos/:idのリクエストボディです。全フィールド省略可能。
type UpdateTodoRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

// IsEmpty はすべてのフィールドが未指定かどうかを返します。
// フィールドを1つも含まない更新ボディはボディ欠落として扱われます。
func (r *UpdateTodoRequest) IsEmpty() bool {
	return r.Title == nil && r.Description == nil && r.Completed == nil
}

// TodoInput はバリデーション・正規化済みの作成ペイロードです。
type TodoInput struct {
	Title       string
	Description *string
	Completed   bool
}

// TodoPatch はバリデーション済みの部分更新ペイロードです。
// nilのフィールドは「変更しない」を意味します。
type TodoPatch struct {
	Title       *string
	Description *string
	Completed   *bool
}

// createRules / updateRules は正規化後の値に対する制約です。
// バリデータはすべてのフィールドエラーを収集してから返します。
type createRules struct {
	Title       string  `json:"title" validate:"required,max=200"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
}

type updateRules struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
}

// Validate は作成リクエストをトリム・正規化し、制約を検証します。
// titleはトリム後に必須(1〜200文字)、descriptionは空白のみならnullに正規化されます。
func (r *CreateTodoRequest) Validate() (*TodoInput, error) {
	rules := createRules{Description: normalizeDescription(r.Description)}
	if r.Title != nil {
		rules.Title = strings.TrimSpace(*r.Title)
	}
	if err := checkRules(rules); err != nil {
		return nil, err
	}

	completed := false
	if r.Completed != nil {
		completed = *r.Completed
	}
	return &TodoInput{
		Title:       rules.Title,
		Description: rules.Description,
		Completed:   completed,
	}, nil
}

// Validate は更新リクエストを検証します。制約は存在するフィールドにのみ適用され、
// 存在しないフィールドはnilのまま(=変更なし)です。
func (r *UpdateTodoRequest) Validate() (*TodoPatch, error) {
	rules := updateRules{Description: normalizeDescription(r.Description)}
	if r.Title != nil {
		trimmed := strings.TrimSpace(*r.Title)
		rules.Title = &trimmed
	}
	if err := checkRules(rules); err != nil {
		return nil, err
	}

	return &TodoPatch{
		Title:       rules.Title,
		Description: rules.Description,
		Completed:   r.Completed,
	}, nil
}

// normalizeDescription はdescriptionをトリムし、空白のみの入力をnilに正規化します。
func normalizeDescription(desc *string) *string {
	if desc == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*desc)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// checkRules は制約違反をフィールドごとに収集し、ValidationErrorにまとめます。
func checkRules(rules interface{}) error {
	err := validate.Struct(rules)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	details := make([]FieldError, 0, len(verrs))
	for _, e := range verrs {
		details = append(details, FieldError{
			Field:   strings.ToLower(e.Field()),
			Message: fieldMessage(e),
		})
	}
	return &ValidationError{Details: details}
}

func fieldMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required and cannot be empty or only whitespace"
	case "min":
		return "cannot be empty or only whitespace"
	case "max":
		return fmt.Sprintf("must be at most %s characters", e.Param())
	default:
		return "is invalid"
	}
}
