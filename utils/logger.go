package utils

import (
	"io"
	"os"

	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger wraps logrus with level-based printf-style output
type Logger struct {
	log *logrus.Logger
}

// Options controls log level and optional rotated file output
type Options struct {
	Level      string
	FilePath   string
	MaxAgeDays int
}

// NewLogger creates a logger writing to stdout; when FilePath is set, output
// is also mirrored to a rotated log file.
func NewLogger(opts Options) *Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: "15:04:05"})

	lvl, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	if opts.FilePath != "" {
		rotator := &lumberjack.Logger{
			Filename: opts.FilePath,
			MaxAge:   opts.MaxAgeDays,
			Compress: true,
		}
		l.AddHook(lfshook.NewHook(rotator, &logrus.TextFormatter{
			FullTimestamp: true,
			DisableColors: true,
		}))
	}

	return &Logger{log: l}
}

// SetOutput redirects console output; used by tests to silence logging
func (l *Logger) SetOutput(w io.Writer) {
	l.log.SetOutput(w)
}

func (l *Logger) Info(msg string, args ...interface{}) {
	l.log.Infof(msg, args...)
}

func (l *Logger) Warn(msg string, args ...interface{}) {
	l.log.Warnf(msg, args...)
}

func (l *Logger) Error(msg string, args ...interface{}) {
	l.log.Errorf(msg, args...)
}

func (l *Logger) Debug(msg string, args ...interface{}) {
	l.log.Debugf(msg, args...)
}
