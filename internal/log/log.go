package log

import (
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelError
	LevelNone
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelError:
		return "ERROR"
	case LevelNone:
		return "NONE"
	default:
		return "UNKNOWN"
	}
}

func LevelFromString(s string) Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return LevelDebug
	case "INFO":
		return LevelInfo
	case "ERROR":
		return LevelError
	case "NONE":
		return LevelNone
	default:
		return LevelDebug // Default to DEBUG
	}
}

// zapLevel maps a Level onto the zap threshold. Warnings sit between Info
// and Error, so they are shown at Info level or lower.
func (l Level) zapLevel() zapcore.Level {
	switch l {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelInfo:
		return zapcore.InfoLevel
	case LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.FatalLevel + 1
	}
}

type Logger struct {
	sugar *zap.SugaredLogger
	atom  zap.AtomicLevel
	level Level
}

// New writes human-readable lines to out.
func New(out io.Writer, level Level) *Logger {
	return NewWithFormat(out, level, "console")
}

// NewWithFormat selects the "json" or "console" encoder.
func NewWithFormat(out io.Writer, level Level, format string) *Logger {
	var enc zapcore.Encoder
	if format == "json" {
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder
		cfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		cfg.ConsoleSeparator = "  "
		enc = zapcore.NewConsoleEncoder(cfg)
	}
	atom := zap.NewAtomicLevelAt(level.zapLevel())
	core := zapcore.NewCore(enc, zapcore.AddSync(out), atom)
	return &Logger{sugar: zap.New(core).Sugar(), atom: atom, level: level}
}

// NewFromZap wraps an existing zap logger. The level gates messages before
// they reach z, so z's own core should accept everything.
func NewFromZap(z *zap.Logger, level Level) *Logger {
	atom := zap.NewAtomicLevelAt(level.zapLevel())
	gated := z.WithOptions(zap.IncreaseLevel(atom))
	return &Logger{sugar: gated.Sugar(), atom: atom, level: level}
}

func (l *Logger) Debugf(format string, v ...interface{}) {
	l.sugar.Debugf(format, v...)
}

func (l *Logger) Infof(format string, v ...interface{}) {
	l.sugar.Infof(format, v...)
}

func (l *Logger) Errorf(format string, v ...interface{}) {
	l.sugar.Errorf(format, v...)
}

func (l *Logger) Warnf(format string, v ...interface{}) {
	l.sugar.Warnf(format, v...)
}

func (l *Logger) SetLevel(level Level) {
	l.level = level
	l.atom.SetLevel(level.zapLevel())
}

func (l *Logger) Level() Level {
	return l.level
}

// Sync flushes buffered entries.
func (l *Logger) Sync() error {
	return l.sugar.Sync()
}
