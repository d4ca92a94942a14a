package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return Debug
	case "warn", "warning":
		return Warn
	case "error":
		return Error
	default:
		return Info
	}
}

func (l Level) String() string {
	switch l {
	case Debug:
		return "debug"
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return "info"
	}
}

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

func ParseFormat(s string) Format {
	if strings.EqualFold(strings.TrimSpace(s), "json") {
		return FormatJSON
	}
	return FormatText
}

// Fields son pares key/value que acompañan a cada línea.
type Fields = map[string]any

type Logger interface {
	With(fields Fields) Logger

	Debug(msg string, fields Fields)
	Info(msg string, fields Fields)
	Warn(msg string, fields Fields)
	Error(msg string, fields Fields)
}

type Options struct {
	Level  Level
	Format Format
	App    string
	Out    io.Writer // default os.Stdout
}

// stdLogger escribe una línea por entrada (text key=value o json).
type stdLogger struct {
	mu     *sync.Mutex
	std    *log.Logger
	level  Level
	format Format
	base   Fields
}

func New(opts Options) Logger {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	format := opts.Format
	if format == "" {
		format = FormatText
	}

	base := Fields{}
	if app := strings.TrimSpace(opts.App); app != "" {
		base["app"] = app
	}

	return &stdLogger{
		mu:     &sync.Mutex{},
		std:    log.New(out, "", 0),
		level:  opts.Level,
		format: format,
		base:   base,
	}
}

// Nop descarta todo. Útil en tests y como default cuando no se inyecta logger.
func Nop() Logger { return nopLogger{} }

// Err arma el field estándar para errores (nil-safe).
func Err(err error) Fields {
	if err == nil {
		return Fields{}
	}
	return Fields{"err": err.Error()}
}

func (l *stdLogger) With(fields Fields) Logger {
	if len(fields) == 0 {
		return l
	}
	return &stdLogger{
		mu:     l.mu,
		std:    l.std,
		level:  l.level,
		format: l.format,
		base:   merge(l.base, fields),
	}
}

func (l *stdLogger) Debug(msg string, fields Fields) { l.log(Debug, msg, fields) }
func (l *stdLogger) Info(msg string, fields Fields)  { l.log(Info, msg, fields) }
func (l *stdLogger) Warn(msg string, fields Fields)  { l.log(Warn, msg, fields) }
func (l *stdLogger) Error(msg string, fields Fields) { l.log(Error, msg, fields) }

func (l *stdLogger) log(lvl Level, msg string, fields Fields) {
	if lvl < l.level {
		return
	}

	entry := merge(l.base, fields)
	entry["ts"] = time.Now().UTC().Format(time.RFC3339Nano)
	entry["level"] = lvl.String()
	entry["msg"] = msg

	var line string
	switch l.format {
	case FormatJSON:
		b, err := json.Marshal(entry)
		if err != nil {
			line = formatText(entry)
		} else {
			line = string(b)
		}
	default:
		line = formatText(entry)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.std.Println(line)
}

func merge(a, b Fields) Fields {
	out := make(Fields, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		if strings.TrimSpace(k) == "" {
			continue
		}
		out[k] = v
	}
	return out
}

func formatText(m Fields) string {
	// keys ordenadas para salida estable
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		v := fmt.Sprintf("%v", m[k])
		if strings.ContainsAny(v, " \t\"") {
			v = fmt.Sprintf("%q", v)
		}
		parts = append(parts, k+"="+v)
	}
	return strings.Join(parts, " ")
}

type nopLogger struct{}

func (n nopLogger) With(Fields) Logger { return n }

func (nopLogger) Debug(string, Fields) {}
func (nopLogger) Info(string, Fields)  {}
func (nopLogger) Warn(string, Fields)  {}
func (nopLogger) Error(string, Fields) {}
