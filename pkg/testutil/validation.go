/*
Package testutil 测试辅助工具
*/
package testutil

import (
	"errors"
	"testing"

	"catalog/domain/shared/validation"

	"github.com/google/go-cmp/cmp"
)

// Expected 产生字段错误的来源：Func 或 ValidatorData
type Expected interface {
	fieldsErrors(t testing.TB) (validation.FieldsErrors, bool)
}

// Func 预期返回 *validation.EntityValidationError 的操作
type Func func() error

func (f Func) fieldsErrors(t testing.TB) (validation.FieldsErrors, bool) {
	t.Helper()
	err := f()
	if err == nil {
		return nil, true
	}
	var vErr *validation.EntityValidationError
	if !errors.As(err, &vErr) {
		t.Errorf("expected *validation.EntityValidationError, got %T: %v", err, err)
		return nil, false
	}
	return vErr.Errors, true
}

// ValidatorData 用校验器校验给定数据
type ValidatorData struct {
	Validator validation.Validator
	Data      map[string]any
}

func (vd ValidatorData) fieldsErrors(t testing.TB) (validation.FieldsErrors, bool) {
	if vd.Validator.Validate(vd.Data) {
		return nil, true
	}
	return vd.Validator.Errors(), true
}

// ContainsErrorMessages 断言产生的字段错误包含 want 中的每个字段，
// 且该字段的消息列表与 want 完全一致；got 可以有额外字段
func ContainsErrorMessages(t testing.TB, expected Expected, want validation.FieldsErrors) bool {
	t.Helper()

	got, ok := expected.fieldsErrors(t)
	if !ok {
		return false
	}
	if len(got) == 0 && len(want) > 0 {
		t.Errorf("expected validation errors %v, but validation passed", want)
		return false
	}

	subset := make(validation.FieldsErrors, len(want))
	for field := range want {
		if msgs, exists := got[field]; exists {
			subset[field] = msgs
		}
	}
	if diff := cmp.Diff(want, subset); diff != "" {
		t.Errorf("validation errors do not contain expected messages (-want +got):\n%s\ncurrent: %v", diff, got)
		return false
	}
	return true
}
