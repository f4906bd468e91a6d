package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/raysh454/yobu/internal/interfaces"
)

// Aliases so callers can depend on this package alone.
type (
	Logger = interfaces.Logger
	Field  = interfaces.Field
)

// JSONLogger is a tiny, structured logger. It implements interfaces.Logger
// and prints one JSON object per line to its writer.
//
// The CLI binary logs to stderr: stdout is reserved for the rendered HTTP
// response, and mixing the two would make the tool unusable in pipes.
type JSONLogger struct {
	w         io.Writer
	component string
	verbose   bool
	fields    []Field
}

// New creates a JSONLogger writing to w. component is optional and is
// included on every entry.
func New(w io.Writer, component string) *JSONLogger {
	return &JSONLogger{w: w, component: component}
}

// NewStderrLogger creates a JSONLogger writing to stderr. Debug and info
// entries are suppressed until SetVerbose(true).
func NewStderrLogger(component string) *JSONLogger {
	return New(os.Stderr, component)
}

// SetVerbose enables debug and info output.
func (l *JSONLogger) SetVerbose(v bool) {
	l.verbose = v
}

func (l *JSONLogger) log(level string, msg string, fields ...Field) {
	type outEntry struct {
		Level     string         `json:"level"`
		Msg       string         `json:"msg"`
		Component string         `json:"component,omitempty"`
		Time      string         `json:"time"`
		Fields    map[string]any `json:"fields,omitempty"`
	}
	m := make(map[string]any)
	for _, f := range l.fields {
		m[f.Key] = f.Value
	}
	for _, f := range fields {
		m[f.Key] = f.Value
	}
	entry := outEntry{
		Level:     level,
		Msg:       msg,
		Component: l.component,
		Time:      time.Now().UTC().Format(time.RFC3339),
		Fields:    m,
	}
	enc, err := json.Marshal(entry)
	if err != nil {
		// Fallback simple formatting if JSON marshal fails
		fmt.Fprintf(l.w, "%s %s %v\n", level, msg, m)
		return
	}
	fmt.Fprintln(l.w, string(enc))
}

func (l *JSONLogger) Debug(msg string, fields ...Field) {
	if l.verbose {
		l.log("debug", msg, fields...)
	}
}

func (l *JSONLogger) Info(msg string, fields ...Field) {
	if l.verbose {
		l.log("info", msg, fields...)
	}
}

func (l *JSONLogger) Warn(msg string, fields ...Field) {
	l.log("warn", msg, fields...)
}

func (l *JSONLogger) Error(msg string, fields ...Field) {
	l.log("error", msg, fields...)
}

func (l *JSONLogger) With(fields ...Field) Logger {
	child := &JSONLogger{
		w:         l.w,
		component: l.component,
		verbose:   l.verbose,
		fields:    append(append([]Field{}, l.fields...), fields...),
	}
	// A component field overrides the component name rather than duplicating it.
	for _, f := range fields {
		if f.Key == "component" {
			if str, ok := f.Value.(string); ok {
				child.component = str
			}
		}
	}
	return child
}
