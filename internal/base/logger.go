package base

import (
	"context"
	"errors"
	"fmt"
	"github.com/fatih/color"
	"github.com/half-nothing/airline-staff-portal/internal/interfaces/global"
	"io"
	"log/slog"
	"os"
)

const LevelFatal = slog.Level(12)

var levelColors = map[slog.Level]*color.Color{
	slog.LevelDebug: color.New(color.FgHiBlack),
	slog.LevelInfo:  color.New(color.FgGreen),
	slog.LevelWarn:  color.New(color.FgYellow),
	slog.LevelError: color.New(color.FgRed),
	LevelFatal:      color.New(color.FgHiRed, color.Bold),
}

func levelName(level slog.Level) string {
	if level == LevelFatal {
		return "FATAL"
	}
	return level.String()
}

type Logger struct {
	logger *slog.Logger
	level  *slog.LevelVar
	file   *os.File
}

func NewLogger() *Logger {
	level := &slog.LevelVar{}
	return &Logger{
		level:  level,
		logger: slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})),
	}
}

func (l *Logger) Init(debug bool) {
	if debug {
		l.level.Set(slog.LevelDebug)
	} else {
		l.level.Set(slog.LevelInfo)
	}

	handlers := []slog.Handler{newConsoleHandler(os.Stdout, l.level)}
	if *global.LogFilePath != "" {
		file, err := os.OpenFile(*global.LogFilePath, os.O_WRONLY|os.O_CREATE|os.O_APPEND, global.DefaultFilePermissions)
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "fail to open log file %s: %v\n", *global.LogFilePath, err)
		} else {
			l.file = file
			handlers = append(handlers, slog.NewTextHandler(file, &slog.HandlerOptions{
				Level:       l.level,
				ReplaceAttr: replaceLevel(false),
			}))
		}
	}

	l.logger = slog.New(&fanoutHandler{handlers: handlers})
	slog.SetDefault(l.logger)
}

func newConsoleHandler(w io.Writer, level slog.Leveler) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: replaceLevel(true),
	})
}

func replaceLevel(colored bool) func(groups []string, a slog.Attr) slog.Attr {
	return func(groups []string, a slog.Attr) slog.Attr {
		if a.Key != slog.LevelKey || len(groups) > 0 {
			return a
		}
		level, ok := a.Value.Any().(slog.Level)
		if !ok {
			return a
		}
		name := levelName(level)
		if c, ok := levelColors[level]; ok && colored {
			name = c.Sprint(name)
		}
		a.Value = slog.StringValue(name)
		return a
	}
}

// fanoutHandler writes each record to every handler that accepts its level.
type fanoutHandler struct {
	handlers []slog.Handler
}

func (h *fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *fanoutHandler) Handle(ctx context.Context, record slog.Record) error {
	var errs []error
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, record.Level) {
			if err := handler.Handle(ctx, record.Clone()); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

func (h *fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, 0, len(h.handlers))
	for _, handler := range h.handlers {
		handlers = append(handlers, handler.WithAttrs(attrs))
	}
	return &fanoutHandler{handlers: handlers}
}

func (h *fanoutHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, 0, len(h.handlers))
	for _, handler := range h.handlers {
		handlers = append(handlers, handler.WithGroup(name))
	}
	return &fanoutHandler{handlers: handlers}
}

type loggerShutdownCallback struct {
	logger *Logger
}

func (c *loggerShutdownCallback) Invoke(_ context.Context) error {
	if c.logger.file == nil {
		return nil
	}
	err := c.logger.file.Close()
	c.logger.file = nil
	return err
}

func (l *Logger) ShutdownCallback() global.Callable {
	return &loggerShutdownCallback{logger: l}
}

func (l *Logger) log(level slog.Level, msg string, v ...interface{}) {
	l.logger.Log(context.Background(), level, msg, v...)
}

func (l *Logger) logF(level slog.Level, msg string, v ...interface{}) {
	if !l.logger.Enabled(context.Background(), level) {
		return
	}
	l.logger.Log(context.Background(), level, fmt.Sprintf(msg, v...))
}

func (l *Logger) Debug(msg string, v ...interface{})  { l.log(slog.LevelDebug, msg, v...) }
func (l *Logger) DebugF(msg string, v ...interface{}) { l.logF(slog.LevelDebug, msg, v...) }
func (l *Logger) Info(msg string, v ...interface{})   { l.log(slog.LevelInfo, msg, v...) }
func (l *Logger) InfoF(msg string, v ...interface{})  { l.logF(slog.LevelInfo, msg, v...) }
func (l *Logger) Warn(msg string, v ...interface{})   { l.log(slog.LevelWarn, msg, v...) }
func (l *Logger) WarnF(msg string, v ...interface{})  { l.logF(slog.LevelWarn, msg, v...) }
func (l *Logger) Error(msg string, v ...interface{})  { l.log(slog.LevelError, msg, v...) }
func (l *Logger) ErrorF(msg string, v ...interface{}) { l.logF(slog.LevelError, msg, v...) }

// Fatal only logs; callers return from main themselves so deferred cleanup still runs.
func (l *Logger) Fatal(msg string, v ...interface{})  { l.log(LevelFatal, msg, v...) }
func (l *Logger) FatalF(msg string, v ...interface{}) { l.logF(LevelFatal, msg, v...) }
