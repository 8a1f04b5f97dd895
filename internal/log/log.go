// SPDX-License-Identifier: EPL-2.0

// Package log configures the process wide logrus logger.
package log

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

var ErrUnknownFormat = errors.New("unknown log format")

// Configure sets level and formatter on the standard logrus logger and
// points it at stderr.
func Configure(level, format string) error {
	return Setup(logrus.StandardLogger(), level, format, os.Stderr)
}

// Setup applies level, format and output to l.
func Setup(l *logrus.Logger, level, format string, w io.Writer) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}

	formatter, err := Formatter(format)
	if err != nil {
		return err
	}

	l.SetLevel(lvl)
	l.SetFormatter(formatter)
	l.SetOutput(w)

	return nil
}

// Formatter returns the logrus formatter for format ("text" or "json").
func Formatter(format string) (logrus.Formatter, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatText:
		return &logrus.TextFormatter{FullTimestamp: true}, nil
	case FormatJSON:
		return &logrus.JSONFormatter{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
