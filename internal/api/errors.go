// File: internal/api/errors.go
package api

import (
	"fmt"
	"strings"
)

// HTTPError 全域錯誤響應模型
// swagger:model api.HTTPError
type HTTPError struct {
	// message 錯誤描述
	Message string `json:"message" example:"page not found"`
	// 驗證失敗的欄位
	Fields []FieldError `json:"fields,omitempty"`
}

type FieldError struct {
	Field string `json:"field" example:"title"`
	Rule  string `json:"rule" example:"required"`
	Param string `json:"param,omitempty"`
}

// ValidationError 表示輸入不合法，任何寫入之前就會回傳
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		if f.Param != "" {
			parts[i] = fmt.Sprintf("%s (%s=%s)", f.Field, f.Rule, f.Param)
		} else {
			parts[i] = fmt.Sprintf("%s (%s)", f.Field, f.Rule)
		}
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// NewValidationError 用於 validator 以外的輸入錯誤
func NewValidationError(field, rule string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Rule: rule}}}
}
