package shared

import "reflect"

// ValueObject 值对象接口
// 值对象的特征：
// 1. 没有唯一标识
// 2. 不可变（immutable）
// 3. 通过属性值判断相等性
// 注意：Go语言中没有完美的方式强制实现不可变性，需要通过约定和编码规范保证
type ValueObject interface {
	// Equals 比较两个值对象是否相等
	// other 可以是任意值（包括 nil），类型不匹配时返回 false，不会 panic
	Equals(other any) bool
}

// Identifier 实体标识
// 标识本身是值对象，同时作为仓储中的键
type Identifier interface {
	ValueObject
	String() string
}

// Entity 实体接口
// 实体与值对象的区别：
// 1. 实体有唯一标识（ID）
// 2. 实体的生命周期较长
// 3. 通过标识判断相等性（即使属性相同，ID不同就是不同的实体）
type Entity[ID Identifier] interface {
	// EntityID 返回实体标识
	EntityID() ID

	// ToJSON 返回实体字段的快照（包含标识），用于比较与存储
	ToJSON() map[string]any
}

// EventRecorder 记录领域事件的实体
// 仓储在保存成功后取出事件并发布
type EventRecorder interface {
	PullEvents() []DomainEvent
}

// EntityEquals 判断两个实体是否相等
// 规则：具体类型相同 且 标识相等；nil 或非实体永远不相等
func EntityEquals[ID Identifier](e Entity[ID], other any) bool {
	if isNil(e) || isNil(other) {
		return false
	}
	o, ok := other.(Entity[ID])
	if !ok {
		return false
	}
	if reflect.TypeOf(e) != reflect.TypeOf(o) {
		return false
	}
	return e.EntityID().Equals(o.EntityID())
}

// isNil 同时识别 nil 接口和带类型的 nil 指针
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
