// Package logger структурированный логгер сервиса на базе zerolog.
// Сохраняет printf-style интерфейс Info/Warn/Error, который используют
// все слои приложения через собственные интерфейсы Logger.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logger обертка над zerolog с printf-style методами
type Logger struct {
	zl     zerolog.Logger
	closer io.Closer
}

// New создает логгер. Если path пустой, пишет только в stdout,
// иначе дублирует вывод в файл. level: debug | info | warn | error.
func New(path, level string) (*Logger, error) {
	parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.InfoLevel
	}

	output := io.Writer(os.Stdout)
	var closer io.Closer

	if path != "" {
		file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file %s: %w", path, err)
		}
		output = io.MultiWriter(os.Stdout, file)
		closer = file
	}

	zl := zerolog.New(output).Level(parsed).With().Timestamp().Logger()

	return &Logger{zl: zl, closer: closer}, nil
}

// Debug логирует сообщение уровня debug
func (l *Logger) Debug(format string, v ...interface{}) {
	l.zl.Debug().Msgf(format, v...)
}

// Info логирует сообщение уровня info
func (l *Logger) Info(format string, v ...interface{}) {
	l.zl.Info().Msgf(format, v...)
}

// Warn логирует сообщение уровня warn
func (l *Logger) Warn(format string, v ...interface{}) {
	l.zl.Warn().Msgf(format, v...)
}

// Error логирует сообщение уровня error
func (l *Logger) Error(format string, v ...interface{}) {
	l.zl.Error().Msgf(format, v...)
}

// Fatal логирует сообщение и завершает процесс с кодом 1
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.zl.Fatal().Msgf(format, v...)
}

// Close закрывает файл лога, если он был открыт
func (l *Logger) Close() error {
	if l.closer != nil {
		return l.closer.Close()
	}
	return nil
}
