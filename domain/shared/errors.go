/*
Package shared - 领域层共享错误定义

设计原则:
1. 领域层定义哨兵错误(sentinel errors)，用于 errors.Is() 类型安全判断
2. 结构化错误在创建时捕获堆栈，但延迟格式化（按需打印）
3. 领域错误不包含 HTTP 状态码等传输层概念
4. 领域层不记录日志，错误原样传递给调用方

堆栈捕获策略:
- 捕获时机：错误创建时（构造函数内）
- 格式化时机：日志打印时（Stack() 方法）
*/
package shared

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// ============================================================================
// 哨兵错误 (Sentinel Errors)
// 用于 errors.Is() 判断错误类型，不携带具体信息
// ============================================================================

var (
	// ErrNotFound 资源未找到
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput 无效输入（参数校验失败）
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidIdentifier 标识格式非法
	ErrInvalidIdentifier = errors.New("invalid identifier")
)

// ============================================================================
// 堆栈捕获辅助函数
// ============================================================================

// CaptureStack 捕获当前调用栈（导出供子领域包使用）
// skip: 跳过的帧数（通常为 3：Callers, CaptureStack, NewXxxError）
func CaptureStack(skip int) []uintptr {
	var pcs [32]uintptr
	n := runtime.Callers(skip, pcs[:])
	return pcs[:n]
}

// FormatStack 格式化堆栈帧为字符串切片（导出供子领域包使用）
// 过滤 runtime 内部帧，最多返回 10 帧
func FormatStack(stack []uintptr) []string {
	if len(stack) == 0 {
		return nil
	}

	frames := runtime.CallersFrames(stack)
	var result []string
	for {
		frame, more := frames.Next()
		if !strings.Contains(frame.File, "runtime/") {
			result = append(result, fmt.Sprintf("%s:%d %s", frame.File, frame.Line, frame.Function))
		}
		if !more || len(result) > 10 {
			break
		}
	}
	return result
}

// Stacker 可提供堆栈的错误接口
// 用于应用层统一提取堆栈
type Stacker interface {
	Stack() []string
}

// ============================================================================
// NotFoundError 仓储中找不到实体
// ============================================================================

// NotFoundError 携带查找的标识与实体类型，用于诊断
type NotFoundError struct {
	IDs        []string
	EntityKind string
	stack      []uintptr
}

// NewNotFoundError 创建"未找到"错误
func NewNotFoundError(entityKind string, ids ...string) *NotFoundError {
	return &NotFoundError{
		IDs:        ids,
		EntityKind: entityKind,
		stack:      CaptureStack(3),
	}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s Not Found using ID %s", e.EntityKind, strings.Join(e.IDs, ", "))
}

func (e *NotFoundError) Unwrap() error   { return ErrNotFound }
func (e *NotFoundError) Stack() []string { return FormatStack(e.stack) }

// ============================================================================
// InvalidUuidError 标识格式错误
// ============================================================================

// InvalidUuidError 构造 Uuid 时传入了非法字符串
type InvalidUuidError struct {
	Value string
	stack []uintptr
}

// NewInvalidUuidError 创建"标识非法"错误
func NewInvalidUuidError(value string) *InvalidUuidError {
	return &InvalidUuidError{
		Value: value,
		stack: CaptureStack(3),
	}
}

func (e *InvalidUuidError) Error() string   { return "ID must be a valid UUID" }
func (e *InvalidUuidError) Unwrap() error   { return ErrInvalidIdentifier }
func (e *InvalidUuidError) Stack() []string { return FormatStack(e.stack) }

var (
	_ Stacker = (*NotFoundError)(nil)
	_ Stacker = (*InvalidUuidError)(nil)
)
