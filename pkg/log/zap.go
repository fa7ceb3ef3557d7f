package log

import (
	"context"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Init builds a Logger from cfg. Unknown levels fall back to info.
func Init(cfg ZapConfig) Logger {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "time"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	if cfg.Encoding == EncodingJSON || cfg.Mode == ModeProduction {
		encoder = zapcore.NewJSONEncoder(encCfg)
	} else {
		if cfg.ColorEnabled {
			encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		} else {
			encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		}
		encoder = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), level)

	opts := []zap.Option{zap.AddCaller(), zap.AddCallerSkip(1)}
	if cfg.Mode != ModeProduction {
		opts = append(opts, zap.Development())
	}

	return &zapLogger{sugar: zap.New(core, opts...).Sugar()}
}

// NewNop returns a Logger that discards everything.
func NewNop() Logger {
	return &zapLogger{sugar: zap.NewNop().Sugar()}
}

// SetTraceID returns a copy of ctx carrying traceID.
func SetTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

// GetTraceID returns the trace ID stored in ctx, or "".
func GetTraceID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(traceIDKey{}).(string)
	return id
}

func (l *zapLogger) with(ctx context.Context) *zap.SugaredLogger {
	if id := GetTraceID(ctx); id != "" {
		return l.sugar.With(traceIDField, id)
	}
	return l.sugar
}

// The non-f variants accept either plain values or a message followed by
// key/value pairs, matching how call sites log provider metrics.
func (l *zapLogger) Debug(ctx context.Context, arg ...any) {
	s := l.with(ctx)
	logw(s.Debugw, s.Debug, arg)
}

func (l *zapLogger) Info(ctx context.Context, arg ...any) {
	s := l.with(ctx)
	logw(s.Infow, s.Info, arg)
}

func (l *zapLogger) Warn(ctx context.Context, arg ...any) {
	s := l.with(ctx)
	logw(s.Warnw, s.Warn, arg)
}

func (l *zapLogger) Error(ctx context.Context, arg ...any) {
	s := l.with(ctx)
	logw(s.Errorw, s.Error, arg)
}

func (l *zapLogger) DPanic(ctx context.Context, arg ...any) {
	s := l.with(ctx)
	logw(s.DPanicw, s.DPanic, arg)
}

func (l *zapLogger) Panic(ctx context.Context, arg ...any) {
	s := l.with(ctx)
	logw(s.Panicw, s.Panic, arg)
}

func (l *zapLogger) Fatal(ctx context.Context, arg ...any) {
	s := l.with(ctx)
	logw(s.Fatalw, s.Fatal, arg)
}

func (l *zapLogger) Debugf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Debugf(template, arg...)
}
func (l *zapLogger) Infof(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Infof(template, arg...)
}
func (l *zapLogger) Warnf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Warnf(template, arg...)
}
func (l *zapLogger) Errorf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Errorf(template, arg...)
}
func (l *zapLogger) DPanicf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).DPanicf(template, arg...)
}
func (l *zapLogger) Panicf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Panicf(template, arg...)
}
func (l *zapLogger) Fatalf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Fatalf(template, arg...)
}

// logw routes "msg", k, v, ... calls to the structured variant.
func logw(structured func(string, ...any), plain func(...any), arg []any) {
	if len(arg) > 1 && len(arg)%2 == 1 {
		if msg, ok := arg[0].(string); ok {
			structured(msg, arg[1:]...)
			return
		}
	}
	plain(arg...)
}
