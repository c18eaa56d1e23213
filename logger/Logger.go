package logger

import (
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"pong/config"
)

// Log is the process logger. It discards everything until Init is called,
// so nothing is written over a terminal screen.
var Log = New(discard())

type Logger struct {
	base  *logrus.Logger
	entry *logrus.Entry
	file  *lumberjack.Logger
}

// New wraps an existing logrus logger.
func New(base *logrus.Logger) *Logger {
	return &Logger{base: base, entry: logrus.NewEntry(base)}
}

func discard() *logrus.Logger {
	base := logrus.New()
	base.SetOutput(io.Discard)
	return base
}

// Init points the logger at a rotating JSON log file and stamps every entry
// with a fresh session id.
func (l *Logger) Init(cfg config.Log) {
	l.file = &lumberjack.Logger{
		Filename:   cfg.Filename,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	}

	l.base.SetFormatter(&logrus.JSONFormatter{})
	l.base.SetOutput(l.file)
	l.base.SetLevel(parseLevel(cfg.Level))
	l.entry = l.base.WithField("session", uuid.NewString())
}

func parseLevel(level string) logrus.Level {
	switch strings.ToLower(level) {

	case "trace":
		return logrus.TraceLevel

	case "info":
		return logrus.InfoLevel

	case "warn":
		return logrus.WarnLevel

	case "error":
		return logrus.ErrorLevel

	case "fatal":
		return logrus.FatalLevel

	default:
		return logrus.DebugLevel
	}
}

// Close flushes and closes the log file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

func (l *Logger) Info(message string) {
	l.entry.Info(message)
}

func (l *Logger) Error(message string) {
	l.entry.Error(message)
}

func (l *Logger) Debug(message string) {
	l.entry.Debug(message)
}

func (l *Logger) Warn(message string) {
	l.entry.Warn(message)
}
