package shared

import (
	"github.com/google/uuid"
)

// canonicalUuidLength 8-4-4-4-12 形式的长度
const canonicalUuidLength = 36

// Uuid 标识值对象
// 只接受规范形式（8-4-4-4-12），不限制版本号；创建后不可变
type Uuid struct {
	id string
}

// validateUuid 校验函数，包级变量便于测试统计调用次数
var validateUuid = func(id string) error {
	if len(id) != canonicalUuidLength {
		return NewInvalidUuidError(id)
	}
	if _, err := uuid.Parse(id); err != nil {
		return NewInvalidUuidError(id)
	}
	return nil
}

// NewUuid 创建 Uuid
// 不传值（或传空字符串）时生成新的随机 UUID；传入非法值时返回 InvalidUuidError
// 每次构造只校验一次
func NewUuid(value ...string) (Uuid, error) {
	id := ""
	if len(value) > 0 {
		id = value[0]
	}
	if id == "" {
		id = uuid.NewString()
	}
	if err := validateUuid(id); err != nil {
		return Uuid{}, err
	}
	return Uuid{id: id}, nil
}

// MustNewUuid 与 NewUuid 相同，校验失败时 panic
// 仅用于测试数据与已知合法的常量
func MustNewUuid(value ...string) Uuid {
	u, err := NewUuid(value...)
	if err != nil {
		panic(err)
	}
	return u
}

// GenerateUuid 生成新的随机标识
func GenerateUuid() Uuid {
	return MustNewUuid()
}

// ID 返回标识字符串
func (u Uuid) ID() string {
	return u.id
}

// String 实现 Stringer / Identifier 接口
func (u Uuid) String() string {
	return u.id
}

// IsZero 是否为未初始化的零值
func (u Uuid) IsZero() bool {
	return u.id == ""
}

// Equals 比较两个 Uuid 是否相等，other 可以是 Uuid 或 *Uuid
func (u Uuid) Equals(other any) bool {
	if p, ok := other.(*Uuid); ok && p != nil {
		other = *p
	}
	return StructurallyEqual(u, other)
}

var _ Identifier = Uuid{}
