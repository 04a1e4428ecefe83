/*
Package validation 字段校验框架

每种实体声明一张规则表（字段 -> 有序规则列表），校验引擎遍历规则表并聚合错误。
同一字段的所有规则都会执行，不会在第一条失败时短路。
*/
package validation

import (
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
)

// validate 底层校验器，校验器本身并发安全，可全局复用
var validate = validator.New()

// Rule 单条字段规则
// present 表示字段是否出现在数据中；返回违规消息和是否违规
type Rule func(field string, value any, present bool) (message string, violated bool)

// FieldRules 单个字段的规则
// Optional 为 true 时，字段缺失或为 nil 则跳过全部规则
type FieldRules struct {
	Field    string
	Optional bool
	Rules    []Rule
}

// RuleTable 规则表，按声明顺序执行
type RuleTable []FieldRules

// Required 字段不能缺失、不能为 nil、字符串不能为空
func Required() Rule {
	return func(field string, value any, present bool) (string, bool) {
		v, ok := indirect(value)
		if !present || !ok {
			return field + " should not be empty", true
		}
		if s, isString := v.(string); isString && validate.Var(s, "required") != nil {
			return field + " should not be empty", true
		}
		return "", false
	}
}

// IsString 字段必须是字符串
func IsString() Rule {
	return func(field string, value any, present bool) (string, bool) {
		v, _ := indirect(value)
		if _, ok := v.(string); !ok {
			return field + " must be a string", true
		}
		return "", false
	}
}

// MaxLength 字符串长度不能超过 max；非字符串同样视为违规
// 长度按 Unicode 字符（rune）计，emoji 等辅助平面字符算 1 个，而不是 UTF-16 的 2 个码元
func MaxLength(max int) Rule {
	tag := fmt.Sprintf("max=%d", max)
	return func(field string, value any, present bool) (string, bool) {
		v, _ := indirect(value)
		s, ok := v.(string)
		if !ok || validate.Var(s, tag) != nil {
			return fmt.Sprintf("%s must be shorter than or equal to %d characters", field, max), true
		}
		return "", false
	}
}

// IsBoolean 字段必须是布尔值
func IsBoolean() Rule {
	return func(field string, value any, present bool) (string, bool) {
		v, _ := indirect(value)
		if _, ok := v.(bool); !ok {
			return field + " must be a boolean value", true
		}
		return "", false
	}
}

// indirect 解引用指针；值为 nil（包括 nil 指针）时 ok 为 false
func indirect(value any) (any, bool) {
	if value == nil {
		return nil, false
	}
	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	return rv.Interface(), true
}
