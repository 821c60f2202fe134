package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Уровни логирования в порядке возрастания важности
const (
	levelDebug = iota
	levelInfo
	levelWarn
	levelError
)

// Logger файловый логгер с уровнями и printf-форматированием
// Потокобезопасен, пишет одновременно в файл и stdout
type Logger struct {
	mu    sync.Mutex
	out   io.Writer
	file  *os.File
	level int
}

// New создает логгер, пишущий в указанный файл
// Если filePath пустой, логи идут только в stdout
func New(filePath, level string) (*Logger, error) {
	l := &Logger{
		out:   os.Stdout,
		level: parseLevel(level),
	}

	if filePath != "" {
		file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("logger: failed to open log file %s: %w", filePath, err)
		}
		l.file = file
		l.out = io.MultiWriter(os.Stdout, file)
	}

	return l, nil
}

// Debug логирует отладочное сообщение
func (l *Logger) Debug(format string, v ...interface{}) {
	l.log(levelDebug, "DEBUG", format, v...)
}

// Info логирует информационное сообщение
func (l *Logger) Info(format string, v ...interface{}) {
	l.log(levelInfo, "INFO", format, v...)
}

// Warn логирует предупреждение
func (l *Logger) Warn(format string, v ...interface{}) {
	l.log(levelWarn, "WARN", format, v...)
}

// Error логирует ошибку
func (l *Logger) Error(format string, v ...interface{}) {
	l.log(levelError, "ERROR", format, v...)
}

// Fatal логирует критическую ошибку и завершает процесс
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.log(levelError, "FATAL", format, v...)
	l.Close()
	os.Exit(1)
}

// Close закрывает файл логов
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

func (l *Logger) log(level int, tag, format string, v ...interface{}) {
	if level < l.level {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	timestamp := time.Now().Format("2006-01-02 15:04:05.000")
	fmt.Fprintf(l.out, "%s [%s] %s\n", timestamp, tag, fmt.Sprintf(format, v...))
}

func parseLevel(level string) int {
	switch strings.ToLower(level) {
	case "debug":
		return levelDebug
	case "warn", "warning":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}
