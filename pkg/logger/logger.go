/*
Package logger 提供项目统一日志能力。

领域层不记录日志；应用层在边界处通过本包输出结构化日志。
*/
package logger

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"catalog/config"
	"catalog/domain/shared"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var log *zap.Logger

// Init 按配置初始化全局 logger
// format 未指定时：开发环境用 console，其余用 json；output 为 file 时按 lumberjack 轮转
func Init(cfg *config.LogConfig, env string) error {
	level, err := zapcore.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "time"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	if cfg.Format == "console" || (cfg.Format == "" && env == "development") {
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	}

	writeSyncer := zapcore.AddSync(os.Stdout)
	if cfg.Output == "file" {
		if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0o755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		writeSyncer = zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    10,
			MaxBackups: 5,
			MaxAge:     7,
			Compress:   true,
		})
	}

	core := zapcore.NewCore(encoder, writeSyncer, level)
	log = zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	return nil
}

// Replace 替换全局 logger，返回恢复函数（主要用于测试注入 observer）
func Replace(l *zap.Logger) func() {
	prev := log
	log = l
	return func() { log = prev }
}

// Sync 刷新缓冲；忽略 stdout 不支持 fsync 时的错误
func Sync() error {
	if log == nil {
		return nil
	}
	if err := log.Sync(); err != nil {
		errStr := err.Error()
		if !strings.Contains(errStr, "inappropriate ioctl for device") &&
			!strings.Contains(errStr, "invalid argument") &&
			!strings.Contains(errStr, "bad file descriptor") {
			return err
		}
	}
	return nil
}

func With(fields ...zap.Field) *zap.Logger {
	if log != nil {
		return log.With(fields...)
	}
	return zap.NewNop()
}

// WithComponent 带组件名的子 logger
func WithComponent(component string) *zap.Logger {
	return With(zap.String("component", component))
}

// ErrorFields 把错误及其领域堆栈（如果有）转换为日志字段
func ErrorFields(err error) []zap.Field {
	if err == nil {
		return nil
	}
	fields := []zap.Field{zap.Error(err)}
	var stacker shared.Stacker
	if errors.As(err, &stacker) {
		if stack := stacker.Stack(); len(stack) > 0 {
			fields = append(fields, zap.Strings("error_stack", stack))
		}
	}
	return fields
}

func Info(msg string, fields ...zap.Field) {
	if log != nil {
		log.Info(msg, fields...)
	}
}

func Warn(msg string, fields ...zap.Field) {
	if log != nil {
		log.Warn(msg, fields...)
	}
}
