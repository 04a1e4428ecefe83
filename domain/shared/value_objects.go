package shared

import (
	"reflect"

	"github.com/google/go-cmp/cmp"
)

// exportAll 允许 cmp 比较未导出字段（值对象字段通常私有）
var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

// StructurallyEqual 值对象的结构化比较
// 1. 任一方为 nil（包括带类型的 nil 指针）时返回 false
// 2. 具体类型必须相同
// 3. 递归比较全部字段（包括私有字段），与内存地址无关
func StructurallyEqual(a, b any) bool {
	if isNil(a) || isNil(b) {
		return false
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	return cmp.Equal(a, b, exportAll)
}
