// Package logger is the application's logrus wrapper.
package logger

import (
	"io"

	"github.com/sirupsen/logrus"
)

type Level logrus.Level

const (
	ErrorLevel = Level(logrus.ErrorLevel)
	WarnLevel  = Level(logrus.WarnLevel)
	InfoLevel  = Level(logrus.InfoLevel)
	DebugLevel = Level(logrus.DebugLevel)
)

// Log is the shared logger. It is usable before Setup with text output at info level.
var Log *logrus.Logger

func init() {
	Log = logrus.New()
	Log.Formatter = textFormatter()
}

func textFormatter() logrus.Formatter {
	return &logrus.TextFormatter{
		DisableLevelTruncation: true,
		PadLevelText:           true,
		TimestampFormat:        "2006/01/02 15:04:05",
		FullTimestamp:          true,
	}
}

// Setup applies level and format ("text" or "json") from configuration.
func Setup(level, format string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	Log.SetLevel(lvl)
	if format == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: "2006-01-02T15:04:05.000Z07:00"})
	} else {
		Log.SetFormatter(textFormatter())
	}
	return nil
}

// SetOutput redirects log output (tests).
func SetOutput(w io.Writer) {
	Log.SetOutput(w)
}

func SetLevel(level Level) {
	Log.SetLevel(logrus.Level(level))
}

// With returns an entry carrying the given fields.
func With(fields logrus.Fields) *logrus.Entry {
	return Log.WithFields(fields)
}

func Debugf(format string, args ...any) {
	Log.Debugf(format, args...)
}

func Infof(format string, args ...any) {
	Log.Infof(format, args...)
}
func Info(args ...any) {
	Log.Infoln(args...)
}

func Warnf(format string, args ...any) {
	Log.Warnf(format, args...)
}
func Warn(args ...any) {
	Log.Warnln(args...)
}

func Errorf(format string, args ...any) {
	Log.Errorf(format, args...)
}
func Error(args ...any) {
	Log.Errorln(args...)
}

func Fatalf(format string, args ...any) {
	Log.Fatalf(format, args...)
}
