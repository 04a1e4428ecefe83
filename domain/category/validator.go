package category

import "catalog/domain/shared/validation"

// MaxNameLength 名称最大字符数
const MaxNameLength = 255

// Rules 分类字段规则表
// name 的三条规则都会执行，违规时一起报告
var Rules = validation.RuleTable{
	{Field: "name", Rules: []validation.Rule{
		validation.Required(),
		validation.IsString(),
		validation.MaxLength(MaxNameLength),
	}},
	{Field: "description", Optional: true, Rules: []validation.Rule{
		validation.IsString(),
	}},
	{Field: "is_active", Optional: true, Rules: []validation.Rule{
		validation.IsBoolean(),
	}},
}

// NewValidator 创建分类校验器
func NewValidator() *validation.TableValidator {
	return validation.NewTableValidator(Rules)
}

// Validate 校验分类字段快照，失败时返回 *validation.EntityValidationError
func Validate(data map[string]any) error {
	return validation.Check(NewValidator(), data)
}
