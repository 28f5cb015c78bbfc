package log

import (
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"moul.io/zapfilter"
)

// Logger wraps zap.Logger so callers don't import zap directly.
type Logger struct {
	l     *zap.Logger
	level zap.AtomicLevel
}

type Config struct {
	Filters string `json:"filters" yaml:"filters"`
	Level   string `json:"level"   yaml:"level"`
	Format  string `json:"format"  yaml:"format"` // text or json
}

var (
	defaultLogger *Logger
	mu            sync.Mutex
)

func DefaultDevConfig() *Config {
	return &Config{Level: "info", Format: "text"}
}

// New creates a Logger from cfg. When cfg.Filters is set the core is wrapped
// with zapfilter rules (for example "debug:processing.* info:*").
func New(cfg *Config) (*Logger, error) {
	var parsed zapcore.Level
	if err := parsed.Set(cfg.Level); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	level := zap.NewAtomicLevelAt(parsed)

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	var enc zapcore.Encoder
	if cfg.Format == "json" {
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	}
	core := zapcore.NewCore(enc, zapcore.Lock(os.Stderr), level)
	if cfg.Filters != "" {
		rules, err := zapfilter.ParseRules(cfg.Filters)
		if err != nil {
			return nil, fmt.Errorf("invalid log filters %q: %w", cfg.Filters, err)
		}
		core = zapfilter.NewFilteringCore(core, rules)
	}
	return &Logger{l: zap.New(core, zap.AddStacktrace(zapcore.ErrorLevel)), level: level}, nil
}

// DevLogger is used when no logger has been initialized yet (mainly tests).
func DevLogger() *Logger {
	l, _ := zap.NewDevelopment()
	return &Logger{l: l, level: zap.NewAtomicLevelAt(zap.DebugLevel)}
}

// InitDefault installs l as the logger used by the package-level functions.
func InitDefault(l *Logger) {
	mu.Lock()
	defer mu.Unlock()
	defaultLogger = l
}

func Default() *Logger {
	mu.Lock()
	defer mu.Unlock()
	if defaultLogger == nil {
		defaultLogger = DevLogger()
	}
	return defaultLogger
}

// GetLogger returns a named child of the default logger. Names show up in the
// log output and are the targets for zapfilter rules.
func GetLogger(name string) *Logger {
	d := Default()
	return &Logger{l: d.l.Named(name), level: d.level}
}

func (l *Logger) Named(name string) *Logger {
	return &Logger{l: l.l.Named(name), level: l.level}
}

func (l *Logger) Debug(msg string, fields ...zap.Field) { l.l.Debug(msg, fields...) }
func (l *Logger) Info(msg string, fields ...zap.Field)  { l.l.Info(msg, fields...) }
func (l *Logger) Warn(msg string, fields ...zap.Field)  { l.l.Warn(msg, fields...) }
func (l *Logger) Error(msg string, fields ...zap.Field) { l.l.Error(msg, fields...) }
func (l *Logger) Fatal(msg string, fields ...zap.Field) { l.l.Fatal(msg, fields...) }
func (l *Logger) Sync() error                           { return l.l.Sync() }

func (l *Logger) Sugar() *zap.SugaredLogger { return l.l.Sugar() }

func Debug(msg string, fields ...zap.Field) { Default().Debug(msg, fields...) }
func Info(msg string, fields ...zap.Field)  { Default().Info(msg, fields...) }
func Warn(msg string, fields ...zap.Field)  { Default().Warn(msg, fields...) }
func Error(msg string, fields ...zap.Field) { Default().Error(msg, fields...) }
func Fatal(msg string, fields ...zap.Field) { Default().Fatal(msg, fields...) }

// field helpers so callers don't need the zap import
var (
	String     = zap.String
	Int        = zap.Int
	Int32      = zap.Int32
	Uint32     = zap.Uint32
	Float64    = zap.Float64
	Bool       = zap.Bool
	Any        = zap.Any
	Duration   = zap.Duration
	Time       = zap.Time
	ErrorField = zap.Error
)
