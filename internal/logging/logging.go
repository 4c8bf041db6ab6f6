// internal/logging/logging.go
package logging

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	wailslogger "github.com/wailsapp/wails/v2/pkg/logger"
)

// LogEvent is the front-end event name carrying log entries.
const LogEvent = "shell:log"

// New returns the shell's logger at the given level ("info" on parse error).
func New(level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)
	return logger
}

// WailsLogger routes the framework's own log output through logrus.
type WailsLogger struct {
	Logger *logrus.Logger
}

var _ wailslogger.Logger = (*WailsLogger)(nil)

func (w *WailsLogger) Print(message string)   { w.Logger.Print(message) }
func (w *WailsLogger) Trace(message string)   { w.Logger.Trace(message) }
func (w *WailsLogger) Debug(message string)   { w.Logger.Debug(message) }
func (w *WailsLogger) Info(message string)    { w.Logger.Info(message) }
func (w *WailsLogger) Warning(message string) { w.Logger.Warn(message) }
func (w *WailsLogger) Error(message string)   { w.Logger.Error(message) }

// Fatal logs at error level; Wails decides itself whether to exit.
func (w *WailsLogger) Fatal(message string) { w.Logger.Error(message) }

// Emitter matches runtime.EventsEmit.
type Emitter func(ctx context.Context, eventName string, optionalData ...interface{})

// EventHook is a logrus hook that forwards entries to the front-end.
type EventHook struct {
	Ctx  context.Context
	Emit Emitter
}

// Levels returns the levels this hook should be called for
func (h *EventHook) Levels() []logrus.Level {
	return []logrus.Level{
		logrus.DebugLevel,
		logrus.InfoLevel,
		logrus.WarnLevel,
		logrus.ErrorLevel,
	}
}

func (h *EventHook) Fire(entry *logrus.Entry) error {
	if h.Emit == nil || h.Ctx == nil {
		return nil
	}
	h.Emit(h.Ctx, LogEvent, map[string]interface{}{
		"level":   entry.Level.String(),
		"message": entry.Message,
		"time":    entry.Time.Format(time.RFC3339),
	})
	return nil
}
