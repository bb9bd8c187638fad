// Package logger provides the prefixed, colour-tagged logger used by every
// service, built on logrus.
package logger

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorReset  = "\033[0m"
)

// Logger writes "[PREFIX] [LEVEL] message" lines.
type Logger struct {
	entry *logrus.Logger
}

// New creates a logger tagging each line with prefix drawn in color.
// An empty color disables colouring.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if prefix == "" {
		return nil, errors.New("logger prefix is required")
	}
	if w == nil {
		return nil, errors.New("logger writer is required")
	}

	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&prefixFormatter{prefix: strings.ToUpper(prefix), color: color})

	return &Logger{entry: l}, nil
}

func (l *Logger) Info(msg string) {
	l.entry.Info(msg)
}

func (l *Logger) Warning(msg string) {
	l.entry.Warn(msg)
}

func (l *Logger) Error(msg string) {
	l.entry.Error(msg)
}

// prefixFormatter renders logrus entries in the vinom line format.
type prefixFormatter struct {
	prefix string
	color  string
}

func (f *prefixFormatter) Format(e *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer

	if f.color != "" {
		fmt.Fprintf(&b, "%s[%s]%s ", f.color, f.prefix, colorReset)
	} else {
		fmt.Fprintf(&b, "[%s] ", f.prefix)
	}

	level := strings.ToUpper(e.Level.String())
	switch {
	case f.color == "":
		fmt.Fprintf(&b, "[%s] ", level)
	case e.Level <= logrus.ErrorLevel:
		fmt.Fprintf(&b, "%s[%s]%s ", colorRed, level, colorReset)
	case e.Level == logrus.WarnLevel:
		fmt.Fprintf(&b, "%s[%s]%s ", colorYellow, level, colorReset)
	default:
		fmt.Fprintf(&b, "[%s] ", level)
	}

	b.WriteString(e.Message)
	b.WriteByte('\n')
	return b.Bytes(), nil
}
