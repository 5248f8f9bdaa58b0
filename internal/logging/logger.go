package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var logger = newLogger(os.Stdout, logrus.InfoLevel)

// CustomFormatter provides a clean, standard log format
type CustomFormatter struct {
	// NoColor drops the ANSI escapes, used for file sinks.
	NoColor bool
}

func (f *CustomFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	timestamp := entry.Time.Format("2006-01-02 15:04:05")

	var levelColor string
	var levelText string
	switch entry.Level {
	case logrus.InfoLevel:
		levelColor = "\033[36m"
		levelText = " INFO"
	case logrus.WarnLevel:
		levelColor = "\033[33m"
		levelText = " WARN"
	case logrus.ErrorLevel:
		levelColor = "\033[31m"
		levelText = "ERROR"
	case logrus.DebugLevel:
		levelColor = "\033[37m"
		levelText = "DEBUG"
	default:
		levelColor = "\033[0m"
		levelText = strings.ToUpper(entry.Level.String())
	}

	reset := "\033[0m"
	if f.NoColor {
		levelColor, reset = "", ""
	}

	module := "main"
	if moduleField, exists := entry.Data["module"]; exists {
		if moduleStr, ok := moduleField.(string); ok {
			module = moduleStr
		}
	}

	// Format: [LEVEL timestamp] [module] message
	return []byte(fmt.Sprintf("[%s%s%s %s] [%12s] %s\n",
		levelColor, levelText, reset, timestamp, module, entry.Message)), nil
}

type Options struct {
	Level string

	// File enables a rotated log file next to stdout.
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

func newLogger(out io.Writer, level logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(level)
	l.SetFormatter(&CustomFormatter{})
	return l
}

// Init replaces the package logger. Safe to skip in tests, a stdout logger
// is installed at package load.
func Init(opts Options) {
	var output io.Writer = os.Stdout
	noColor := false

	if opts.File != "" {
		rotator := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    orDefault(opts.MaxSizeMB, 10),
			MaxBackups: orDefault(opts.MaxBackups, 3),
			MaxAge:     orDefault(opts.MaxAgeDays, 7),
			Compress:   true,
		}
		output = io.MultiWriter(os.Stdout, rotator)
		noColor = true
	}

	l := newLogger(output, ParseLevel(opts.Level))
	l.SetFormatter(&CustomFormatter{NoColor: noColor})
	logger = l
}

// SetOutput redirects the current logger, mostly for tests.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

func Logger() *logrus.Logger {
	return logger
}

func ParseLevel(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "debug":
		return logrus.DebugLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

func orDefault(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}

func entry(module string) *logrus.Entry {
	return logger.WithField("module", module)
}

func Info(msg string, args ...interface{}) {
	InfoModule("main", msg, args...)
}

func Warn(msg string, args ...interface{}) {
	WarnModule("main", msg, args...)
}

func Error(msg string, args ...interface{}) {
	ErrorModule("main", msg, args...)
}

func Debug(msg string, args ...interface{}) {
	DebugModule("main", msg, args...)
}

func Fatal(msg string, args ...interface{}) {
	e := entry("main")
	if len(args) > 0 {
		e.Fatalf(msg, args...)
	} else {
		e.Fatal(msg)
	}
}

// Module-specific logging functions
func InfoModule(module, msg string, args ...interface{}) {
	e := entry(module)
	if len(args) > 0 {
		e.Infof(msg, args...)
	} else {
		e.Info(msg)
	}
}

func WarnModule(module, msg string, args ...interface{}) {
	e := entry(module)
	if len(args) > 0 {
		e.Warnf(msg, args...)
	} else {
		e.Warn(msg)
	}
}

func ErrorModule(module, msg string, args ...interface{}) {
	e := entry(module)
	if len(args) > 0 {
		e.Errorf(msg, args...)
	} else {
		e.Error(msg)
	}
}

func DebugModule(module, msg string, args ...interface{}) {
	e := entry(module)
	if len(args) > 0 {
		e.Debugf(msg, args...)
	} else {
		e.Debug(msg)
	}
}
