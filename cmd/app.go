package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	appcategory "catalog/application/category"
	"catalog/config"
	"catalog/domain/shared"
	"catalog/infrastructure/persistence/memory"
	"catalog/infrastructure/retry"
	"catalog/pkg/logger"

	"go.uber.org/zap"
	"gopkg.in/natefinch/lumberjack.v2"
)

// categoryEvents 审计处理器订阅的事件
var categoryEvents = []string{"category.created", "category.activated", "category.deactivated"}

// App 应用程序结构体
type App struct {
	cfg      *config.Config
	bus      *shared.EventBus
	repo     *memory.CategoryRepository
	services *appcategory.ApplicationService
	audit    io.WriteCloser
}

// NewApp 创建应用程序
// 顺序：配置 -> 日志 -> 事件总线（审计处理器带重试） -> 仓储 -> 应用服务
func NewApp(configPath string) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if err := logger.Init(&cfg.Log, cfg.App.Env); err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	app := &App{cfg: cfg, bus: shared.NewEventBus()}
	if cfg.Events.AuditFile != "" {
		app.audit = &lumberjack.Logger{
			Filename:   cfg.Events.AuditFile,
			MaxSize:    10,
			MaxBackups: 5,
			MaxAge:     30,
		}
	}

	audit := retry.NewHandler(auditHandler(app.audit), retry.FromAppConfig(cfg.Events.Retry))
	for _, name := range categoryEvents {
		if err := app.bus.Subscribe(name, audit); err != nil {
			return nil, fmt.Errorf("subscribe %s: %w", name, err)
		}
	}

	// 仓储在保存成功后发布聚合根产生的领域事件，发布失败只记录告警
	app.repo = memory.NewCategoryRepository(memory.WithEventPublisher(app.bus, func(e shared.DomainEvent, err error) {
		logger.Warn("failed to publish event", zap.String("event", e.EventName()), zap.Error(err))
	}))
	app.services = appcategory.NewApplicationService(app.repo, cfg.Search)
	return app, nil
}

// auditRecord 审计文件中的一行
type auditRecord struct {
	Event       string    `json:"event"`
	AggregateID string    `json:"aggregate_id"`
	OccurredOn  time.Time `json:"occurred_on"`
}

// auditHandler 记录分类事件；w 非空时追加一行 JSON，写入失败返回错误交由重试处理
func auditHandler(w io.Writer) shared.EventHandler {
	return shared.NewFuncHandler("category-audit", func(e shared.DomainEvent) error {
		if w != nil {
			line, err := json.Marshal(auditRecord{
				Event:       e.EventName(),
				AggregateID: e.GetAggregateID(),
				OccurredOn:  e.OccurredOn(),
			})
			if err != nil {
				return err
			}
			if _, err := w.Write(append(line, '\n')); err != nil {
				return fmt.Errorf("write audit record: %w", err)
			}
		}
		logger.Info("domain event",
			zap.String("event", e.EventName()),
			zap.String("aggregate_id", e.GetAggregateID()),
			zap.Time("occurred_on", e.OccurredOn()))
		return nil
	})
}

// Run 创建给定名称的分类并输出第一页搜索结果
func (a *App) Run(ctx context.Context, names []string, req appcategory.ListCategoriesRequest) (*appcategory.ListCategoriesResponse, error) {
	defer logger.Sync()

	logger.Info("catalog starting",
		zap.String("app", a.cfg.App.Name),
		zap.String("version", a.cfg.App.Version),
		zap.String("env", a.cfg.App.Env))

	for _, name := range names {
		if _, err := a.services.Create(ctx, appcategory.CreateCategoryRequest{Name: name}); err != nil {
			return nil, err
		}
	}

	page, err := a.services.List(ctx, req)
	if err != nil {
		return nil, err
	}

	logger.Info("search finished",
		zap.Int("total", page.Total),
		zap.Int("current_page", page.CurrentPage),
		zap.Int("last_page", page.LastPage),
		zap.Int("items", len(page.Items)))
	return page, nil
}

// Close 关闭审计文件
func (a *App) Close() error {
	if a.audit == nil {
		return nil
	}
	return a.audit.Close()
}

// Service 返回分类应用服务（用于测试）
func (a *App) Service() *appcategory.ApplicationService {
	return a.services
}

// PublishHistory 返回事件发布历史
func (a *App) PublishHistory() []shared.EventPublishResult {
	return a.bus.GetPublishHistory()
}
