package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/suchimauz/clinic-schedule-slots-service/internal/config"
	"github.com/suchimauz/clinic-schedule-slots-service/internal/core/ports/out"
)

// ZerologLogger реализует LoggerPort поверх zerolog
// Локально - цветной консольный вывод, в остальных окружениях - JSON
type ZerologLogger struct {
	logger zerolog.Logger
}

func NewZerologLogger(cfg *config.Config) *ZerologLogger {
	var w io.Writer = os.Stdout
	level := zerolog.InfoLevel

	if cfg.IsLocal() {
		w = zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: "2006-01-02 15:04:05.000",
		}
		level = zerolog.DebugLevel
	}

	zl := zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Str("version", cfg.App.Version).
		Logger()

	zerolog.TimeFieldFormat = time.RFC3339Nano

	return &ZerologLogger{logger: zl}
}

func (l *ZerologLogger) WithFields(fields out.LogFields) out.LoggerPort {
	return &ZerologLogger{
		logger: l.logger.With().Fields(map[string]interface{}(fields)).Logger(),
	}
}

func (l *ZerologLogger) WithModule(module string) out.LoggerPort {
	return &ZerologLogger{
		logger: l.logger.With().Str("module", module).Logger(),
	}
}

func (l *ZerologLogger) Debug(event string, fields out.LogFields) {
	l.log(l.logger.Debug(), event, fields)
}

func (l *ZerologLogger) Info(event string, fields out.LogFields) {
	l.log(l.logger.Info(), event, fields)
}

func (l *ZerologLogger) Warn(event string, fields out.LogFields) {
	l.log(l.logger.Warn(), event, fields)
}

func (l *ZerologLogger) Error(event string, fields out.LogFields) {
	l.log(l.logger.Error(), event, fields)
}

func (l *ZerologLogger) log(e *zerolog.Event, event string, fields out.LogFields) {
	if fields != nil {
		e = e.Fields(map[string]interface{}(fields))
	}
	e.Msg(event)
}
