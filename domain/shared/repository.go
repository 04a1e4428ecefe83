package shared

import (
	"context"

	"catalog/domain/shared/search"
)

// Repository 通用仓储接口
// DDD原则：
// 1. 仓储只负责聚合根的持久化
// 2. 包含 context.Context，与基于 I/O 的实现保持签名兼容
// 3. Update/Delete 要求实体已存在，否则返回 NotFoundError
type Repository[E Entity[ID], ID Identifier] interface {
	Insert(ctx context.Context, entity E) error
	BulkInsert(ctx context.Context, entities []E) error
	FindAll(ctx context.Context) ([]E, error)

	// FindByID 找不到时返回 E 的零值和 nil 错误
	FindByID(ctx context.Context, id ID) (E, error)
	Update(ctx context.Context, entity E) error
	Delete(ctx context.Context, id ID) error

	// EntityKind 仓储管理的实体类型名，用于构造 NotFoundError
	EntityKind() string
}

// SearchableRepository 支持过滤、排序、分页的仓储
type SearchableRepository[E Entity[ID], ID Identifier, F comparable] interface {
	Repository[E, ID]
	Search(ctx context.Context, params search.Params[F]) (*search.Result[E, F], error)
}
