package category

import (
	"time"

	"catalog/domain/shared"
)

// Category 分类聚合根
// 聚合根特征：
// 1. 所有字段私有，通过方法暴露行为
// 2. 状态变更先校验候选状态，通过后才提交（校验失败时原状态不变）
// 3. 包含事件列表用于记录领域事件
type Category struct {
	categoryID  shared.Uuid
	name        string
	description *string
	isActive    bool
	createdAt   time.Time

	events []shared.DomainEvent
}

// Props 创建分类的参数，未设置的字段使用默认值：
// CategoryID 零值时生成新标识，Description 默认 nil，IsActive 默认 true，CreatedAt 零值时取当前时间
type Props struct {
	CategoryID  shared.Uuid
	Name        string
	Description *string
	IsActive    *bool
	CreatedAt   time.Time
}

// NewCategory 按参数构造分类并补齐默认值，不做校验
// 主要供仓储重建和测试使用，业务代码应使用 Create
func NewCategory(props Props) *Category {
	c := &Category{
		categoryID:  props.CategoryID,
		name:        props.Name,
		description: cloneString(props.Description),
		isActive:    true,
		createdAt:   props.CreatedAt,
		events:      make([]shared.DomainEvent, 0),
	}
	if c.categoryID.IsZero() {
		c.categoryID = shared.GenerateUuid()
	}
	if props.IsActive != nil {
		c.isActive = *props.IsActive
	}
	if c.createdAt.IsZero() {
		c.createdAt = time.Now()
	}
	return c
}

// Create 创建分类（工厂方法）
// 校验失败时返回 *validation.EntityValidationError
func Create(props Props) (*Category, error) {
	c := NewCategory(props)
	if err := Validate(c.ToJSON()); err != nil {
		return nil, err
	}
	c.recordEvent(NewCategoryCreatedEvent(c.categoryID.String(), c.name))
	return c, nil
}

// ============================================================================
// 领域行为方法
// ============================================================================
//
// DDD原则：实体的状态变更通过行为方法进行，而非直接修改字段
// 每个行为方法先校验变更后的快照，通过后才写入字段

// ChangeName 修改名称
func (c *Category) ChangeName(name string) error {
	if err := c.validateWith("name", name); err != nil {
		return err
	}
	c.name = name
	return nil
}

// ChangeDescription 修改描述，nil 表示清空
func (c *Category) ChangeDescription(description *string) error {
	if err := c.validateWith("description", derefOrNil(description)); err != nil {
		return err
	}
	c.description = cloneString(description)
	return nil
}

// Activate 激活分类
func (c *Category) Activate() error {
	if err := c.validateWith("is_active", true); err != nil {
		return err
	}
	c.isActive = true
	c.recordEvent(NewCategoryActivatedEvent(c.categoryID.String()))
	return nil
}

// Deactivate 停用分类
func (c *Category) Deactivate() error {
	if err := c.validateWith("is_active", false); err != nil {
		return err
	}
	c.isActive = false
	c.recordEvent(NewCategoryDeactivatedEvent(c.categoryID.String()))
	return nil
}

func (c *Category) validateWith(field string, value any) error {
	candidate := c.ToJSON()
	candidate[field] = value
	return Validate(candidate)
}

// ============================================================================
// Getters - 只读访问器
// ============================================================================

func (c *Category) EntityID() shared.Uuid   { return c.categoryID }
func (c *Category) CategoryID() shared.Uuid { return c.categoryID }
func (c *Category) Name() string            { return c.name }
func (c *Category) IsActive() bool          { return c.isActive }
func (c *Category) CreatedAt() time.Time    { return c.createdAt }

// Description 返回描述的副本，未设置时为 nil
func (c *Category) Description() *string { return cloneString(c.description) }

// Equals 同为 Category 且标识相等
func (c *Category) Equals(other any) bool {
	return shared.EntityEquals[shared.Uuid](c, other)
}

// ToJSON 返回字段快照；description 未设置时为 nil
func (c *Category) ToJSON() map[string]any {
	return map[string]any{
		"category_id": c.categoryID.String(),
		"name":        c.name,
		"description": derefOrNil(c.description),
		"is_active":   c.isActive,
		"created_at":  c.createdAt,
	}
}

// PullEvents 获取并清空聚合根的事件列表
func (c *Category) PullEvents() []shared.DomainEvent {
	events := make([]shared.DomainEvent, len(c.events))
	copy(events, c.events)
	c.events = make([]shared.DomainEvent, 0)
	return events
}

func (c *Category) recordEvent(event shared.DomainEvent) {
	c.events = append(c.events, event)
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func derefOrNil(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

var (
	_ shared.Entity[shared.Uuid] = (*Category)(nil)
	_ shared.EventRecorder       = (*Category)(nil)
)
