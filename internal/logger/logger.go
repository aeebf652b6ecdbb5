// Package logger provides the structured leveled logger used by the
// rendering pipeline and the gallery command.
package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Level is the severity of a log message.
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

// String returns the level name.
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Format selects the output encoding.
type Format int

const (
	TextFormat Format = iota
	JSONFormat
)

type entry struct {
	Timestamp string         `json:"timestamp"`
	Level     string         `json:"level"`
	Message   string         `json:"message"`
	Component string         `json:"component,omitempty"`
	Fields    map[string]any `json:"fields,omitempty"`
	Error     string         `json:"error,omitempty"`
}

// Logger writes leveled, optionally structured log lines.
type Logger struct {
	mu        sync.Mutex
	level     Level
	format    Format
	output    io.Writer
	component string
}

// New creates a logger writing to output, which defaults to stdout.
func New(level Level, format Format, output io.Writer) *Logger {
	if output == nil {
		output = os.Stdout
	}
	return &Logger{level: level, format: format, output: output}
}

// WithComponent returns a copy tagged with a component name.
func (l *Logger) WithComponent(component string) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	return &Logger{level: l.level, format: l.format, output: l.output, component: component}
}

// SetLevel changes the minimum reported level.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

func (l *Logger) log(level Level, msg string, fields map[string]any, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if level < l.level {
		return
	}
	e := entry{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Level:     level.String(),
		Message:   msg,
		Component: l.component,
		Fields:    fields,
	}
	if err != nil {
		e.Error = err.Error()
	}
	switch l.format {
	case JSONFormat:
		b, _ := json.Marshal(e)
		fmt.Fprintln(l.output, string(b))
	default:
		var parts []string
		parts = append(parts, fmt.Sprintf("[%s] %s", e.Timestamp, e.Level))
		if e.Component != "" {
			parts = append(parts, fmt.Sprintf("[%s]", e.Component))
		}
		parts = append(parts, e.Message)
		for k, v := range e.Fields {
			parts = append(parts, fmt.Sprintf("%s=%v", k, v))
		}
		if e.Error != "" {
			parts = append(parts, "error="+e.Error)
		}
		fmt.Fprintln(l.output, strings.Join(parts, " "))
	}
}

// Debug logs a debug message with optional fields.
func (l *Logger) Debug(msg string, fields ...map[string]any) {
	l.log(DebugLevel, msg, first(fields), nil)
}

// Info logs an info message with optional fields.
func (l *Logger) Info(msg string, fields ...map[string]any) {
	l.log(InfoLevel, msg, first(fields), nil)
}

// Warn logs a warning with optional fields.
func (l *Logger) Warn(msg string, fields ...map[string]any) {
	l.log(WarnLevel, msg, first(fields), nil)
}

// Error logs an error with optional fields.
func (l *Logger) Error(msg string, err error, fields ...map[string]any) {
	l.log(ErrorLevel, msg, first(fields), err)
}

// Debugf logs a formatted debug message.
func (l *Logger) Debugf(format string, args ...any) {
	l.log(DebugLevel, fmt.Sprintf(format, args...), nil, nil)
}

// Infof logs a formatted info message.
func (l *Logger) Infof(format string, args ...any) {
	l.log(InfoLevel, fmt.Sprintf(format, args...), nil, nil)
}

func first(fields []map[string]any) map[string]any {
	if len(fields) > 0 {
		return fields[0]
	}
	return nil
}

var (
	global     *Logger
	globalOnce sync.Once
)

// Global returns the process-wide logger, configured from LOG_LEVEL and
// LOG_FORMAT on first use.
func Global() *Logger {
	globalOnce.Do(func() {
		global = New(InfoLevel, TextFormat, os.Stdout)
		switch strings.ToUpper(os.Getenv("LOG_LEVEL")) {
		case "DEBUG":
			global.level = DebugLevel
		case "WARN", "WARNING":
			global.level = WarnLevel
		case "ERROR":
			global.level = ErrorLevel
		}
		if strings.EqualFold(os.Getenv("LOG_FORMAT"), "json") {
			global.format = JSONFormat
		}
	})
	return global
}
