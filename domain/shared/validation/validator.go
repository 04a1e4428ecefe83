package validation

import (
	"maps"
	"slices"

	"catalog/domain/shared"
)

// FieldsErrors 字段名 -> 有序的违规消息
type FieldsErrors map[string][]string

// Validator 字段校验器
// Validate 返回是否通过；失败时 Errors 返回结构化的字段错误
type Validator interface {
	Validate(data map[string]any) bool
	Errors() FieldsErrors
}

// TableValidator 由规则表驱动的校验器
// 非并发安全：Errors 保存的是最近一次 Validate 的结果
type TableValidator struct {
	table  RuleTable
	errors FieldsErrors
}

// NewTableValidator 创建规则表校验器
func NewTableValidator(table RuleTable) *TableValidator {
	return &TableValidator{table: table}
}

func (v *TableValidator) Validate(data map[string]any) bool {
	errs := FieldsErrors{}
	for _, fr := range v.table {
		value, present := data[fr.Field]
		if fr.Optional {
			if _, ok := indirect(value); !present || !ok {
				continue
			}
		}
		for _, rule := range fr.Rules {
			if msg, violated := rule(fr.Field, value, present); violated {
				errs[fr.Field] = append(errs[fr.Field], msg)
			}
		}
	}

	if len(errs) == 0 {
		v.errors = nil
		return true
	}
	v.errors = errs
	return false
}

// Errors 返回最近一次校验的字段错误副本；通过校验时为 nil
func (v *TableValidator) Errors() FieldsErrors {
	if v.errors == nil {
		return nil
	}
	out := make(FieldsErrors, len(v.errors))
	for field, msgs := range v.errors {
		out[field] = slices.Clone(msgs)
	}
	return out
}

// Check 校验数据，失败时返回 EntityValidationError
func Check(v Validator, data map[string]any) error {
	if v.Validate(data) {
		return nil
	}
	return NewEntityValidationError(v.Errors())
}

// EntityValidationError 实体校验失败
// 携带全部字段错误，errors.Is(err, shared.ErrInvalidInput) 成立
type EntityValidationError struct {
	Errors  FieldsErrors
	message string
	stack   []uintptr
}

// NewEntityValidationError 创建校验错误
func NewEntityValidationError(errs FieldsErrors) *EntityValidationError {
	return &EntityValidationError{
		Errors:  errs,
		message: "Validation Error",
		stack:   shared.CaptureStack(3),
	}
}

func (e *EntityValidationError) Error() string   { return e.message }
func (e *EntityValidationError) Unwrap() error   { return shared.ErrInvalidInput }
func (e *EntityValidationError) Stack() []string { return shared.FormatStack(e.stack) }

// Count 返回违规字段数（不是消息总数）
func (e *EntityValidationError) Count() int {
	return len(e.Errors)
}

// Fields 返回按字母排序的违规字段名
func (e *EntityValidationError) Fields() []string {
	return slices.Sorted(maps.Keys(e.Errors))
}

var (
	_ Validator      = (*TableValidator)(nil)
	_ shared.Stacker = (*EntityValidationError)(nil)
)
