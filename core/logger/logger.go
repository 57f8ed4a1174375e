package logger

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	base *zap.SugaredLogger
	once sync.Once
)

// Init configures the process-wide logger. Level is one of debug, info,
// warn, error; anything else falls back to info.
func Init(level string) {
	once.Do(func() {
		cfg := zap.NewProductionConfig()
		cfg.Encoding = "console"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

		var lvl zapcore.Level
		if err := lvl.Set(level); err != nil {
			lvl = zapcore.InfoLevel
		}
		cfg.Level = zap.NewAtomicLevelAt(lvl)

		l, err := cfg.Build(zap.AddCallerSkip(1))
		if err != nil {
			l = zap.NewNop()
		}
		base = l.Sugar()
	})
}

func get() *zap.SugaredLogger {
	if base == nil {
		Init("info")
	}
	return base
}

func Info(msg string, kv ...any) {
	get().Infow(msg, pairs(kv)...)
}

func Warn(msg string, kv ...any) {
	get().Warnw(msg, pairs(kv)...)
}

func Error(msg string, kv ...any) {
	get().Errorw(msg, pairs(kv)...)
}

// Sync flushes buffered log entries; called on shutdown.
func Sync() {
	if base != nil {
		_ = base.Sync()
	}
}

// pairs normalizes mixed argument lists into key/value pairs. Call sites pass
// either ("key", value, ...) pairs or a bare error value; bare errors are
// logged under the "error" key.
func pairs(kv []any) []any {
	out := make([]any, 0, len(kv)+1)
	for i := 0; i < len(kv); {
		if err, ok := kv[i].(error); ok {
			out = append(out, "error", err)
			i++
			continue
		}
		if i+1 < len(kv) {
			out = append(out, kv[i], kv[i+1])
			i += 2
			continue
		}
		out = append(out, "detail", kv[i])
		i++
	}
	return out
}
