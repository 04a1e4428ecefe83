package errors

import (
	"errors"
	"fmt"

	"catalog/domain/shared"
	"catalog/domain/shared/validation"
)

// ErrorCode 错误码
type ErrorCode string

const (
	CodeInternal   ErrorCode = "INTERNAL_ERROR"
	CodeBadRequest ErrorCode = "BAD_REQUEST"
	CodeNotFound   ErrorCode = "NOT_FOUND"
	CodeValidation ErrorCode = "VALIDATION_ERROR"
)

// AppError 应用错误
// Fields 仅在校验错误时填充（字段 -> 消息列表）
type AppError struct {
	Code    ErrorCode           `json:"code"`
	Message string              `json:"message"`
	Fields  map[string][]string `json:"fields,omitempty"`
	Err     error               `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New 创建新错误
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap 包装错误
func Wrap(err error, code ErrorCode, message string) *AppError {
	appErr := New(code, message)
	appErr.Err = err
	return appErr
}

// Is 检查是否为特定错误码
func Is(err error, code ErrorCode) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// MapDomainError 将领域错误映射为应用错误
// 原始错误保留在 Err 中，errors.Is/As 仍可穿透
func MapDomainError(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	var vErr *validation.EntityValidationError
	if errors.As(err, &vErr) {
		mapped := Wrap(err, CodeValidation, vErr.Error())
		mapped.Fields = vErr.Errors
		return mapped
	}

	switch {
	case errors.Is(err, shared.ErrNotFound):
		return Wrap(err, CodeNotFound, err.Error())
	case errors.Is(err, shared.ErrInvalidIdentifier), errors.Is(err, shared.ErrInvalidInput):
		return Wrap(err, CodeBadRequest, err.Error())
	default:
		return Wrap(err, CodeInternal, "internal error")
	}
}
