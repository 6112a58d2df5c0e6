package log

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

type level int

const (
	debugLevel level = iota
	infoLevel
	warnLevel
	errorLevel
)

const (
	envLogLevel    = "LOG_LEVEL"
	envLogFormat   = "LOG_FORMAT"
	envLogFilePath = "LOG_FILE_PATH"
	logFormatText  = "text"
	logFormatJSON  = "json"

	terminalColorReset  = "\033[0m"
	terminalColorGray   = "\033[90m"
	terminalColorGreen  = "\033[32m"
	terminalColorYellow = "\033[33m"
	terminalColorRed    = "\033[31m"
)

func (lv level) String() string {
	switch lv {
	case debugLevel:
		return "DEBUG"
	case infoLevel:
		return "INFO"
	case warnLevel:
		return "WARN"
	case errorLevel:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

type logger struct {
	mu       sync.Mutex
	min      level
	format   string
	out      io.Writer
	color    bool
	filePath string
	file     *os.File
	now      func() time.Time
}

var global = newLoggerFromEnv()

// Stdout carries command results, so log lines go to stderr.
func newLoggerFromEnv() *logger {
	format := strings.ToLower(strings.TrimSpace(os.Getenv(envLogFormat)))
	if format != logFormatJSON {
		format = logFormatText
	}
	return &logger{
		min:      parseLevel(os.Getenv(envLogLevel)),
		format:   format,
		out:      os.Stderr,
		color:    format == logFormatText,
		filePath: strings.TrimSpace(os.Getenv(envLogFilePath)),
		now:      time.Now,
	}
}

func parseLevel(raw string) level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return debugLevel
	case "warn", "warning":
		return warnLevel
	case "error":
		return errorLevel
	default:
		return infoLevel
	}
}

// SetOutput redirects console output and disables colors. It returns a func
// restoring the previous writer.
func SetOutput(w io.Writer) func() {
	global.mu.Lock()
	defer global.mu.Unlock()
	prevOut, prevColor := global.out, global.color
	global.out = w
	global.color = false
	return func() {
		global.mu.Lock()
		defer global.mu.Unlock()
		global.out = prevOut
		global.color = prevColor
	}
}

// SetLevel accepts debug, info, warn or error; anything else means info.
func SetLevel(raw string) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.min = parseLevel(raw)
}

func Debugf(format string, args ...any) {
	global.logf(debugLevel, format, args...)
}

func Infof(format string, args ...any) {
	global.logf(infoLevel, format, args...)
}

func Warnf(format string, args ...any) {
	global.logf(warnLevel, format, args...)
}

func Errorf(format string, args ...any) {
	global.logf(errorLevel, format, args...)
}

func (l *logger) logf(lv level, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if lv < l.min {
		return
	}

	ts := l.now().Format(time.RFC3339Nano)
	line := l.formatLine(ts, lv, callerFuncName(3), fmt.Sprintf(format, args...))

	if l.color {
		fmt.Fprintln(l.out, colorForLevel(lv)+line+terminalColorReset)
	} else {
		fmt.Fprintln(l.out, line)
	}
	l.writeToFile(line + "\n")
}

func (l *logger) formatLine(ts string, lv level, caller, message string) string {
	if l.format == logFormatJSON {
		payload := map[string]string{
			"timestamp": ts,
			"level":     lv.String(),
			"caller":    caller,
			"message":   message,
		}
		if b, err := json.Marshal(payload); err == nil {
			return string(b)
		}
	}
	return fmt.Sprintf("%s:%s:%s:%s", ts, lv, caller, message)
}

// writeToFile must be called with l.mu held.
func (l *logger) writeToFile(line string) {
	if l.filePath == "" {
		return
	}
	if l.file == nil {
		if err := os.MkdirAll(filepath.Dir(l.filePath), 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "logger open file error: %v\n", err)
			l.filePath = ""
			return
		}
		f, err := os.OpenFile(l.filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "logger open file error: %v\n", err)
			l.filePath = ""
			return
		}
		l.file = f
	}
	if _, err := l.file.WriteString(line); err != nil {
		fmt.Fprintf(os.Stderr, "logger write error: %v\n", err)
	}
}

func callerFuncName(skip int) string {
	pc, _, _, ok := runtime.Caller(skip)
	if !ok {
		return "unknown"
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknown"
	}
	fullName := fn.Name()
	parts := strings.Split(fullName, "/")
	return parts[len(parts)-1]
}

func colorForLevel(lv level) string {
	switch lv {
	case debugLevel:
		return terminalColorGray
	case infoLevel:
		return terminalColorGreen
	case warnLevel:
		return terminalColorYellow
	case errorLevel:
		return terminalColorRed
	default:
		return terminalColorReset
	}
}
