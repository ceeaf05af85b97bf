package logging

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
)

type Logger struct {
	*slog.Logger
}

func BuildLogger() *Logger {
	logger := Logger{Logger: slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))}
	return &logger
}

func BuildLoggerFromCtx(ctx *gin.Context) *Logger {
	logger := BuildLogger()
	return &Logger{Logger: logger.With("path", ctx.Request.URL.Path)}
}

func (l *Logger) WithError(err error) *Logger {
	modifiedLogger := Logger{Logger: l.With("error", err.Error())}
	return &modifiedLogger
}
