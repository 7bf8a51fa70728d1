// Package logging configures logrus for the server and the CLI.
//
// Logs always go to stderr in production because stdout carries the MCP
// protocol. Packages log through entries tagged with a component:
//
//	var log = logrus.WithField("component", "server")
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// Supported values for the format argument.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// New returns a logger writing to out at the given level and format.
func New(level, format string, out io.Writer) (*logrus.Logger, error) {
	logger := logrus.New()
	if err := apply(logger, level, format, out); err != nil {
		return nil, err
	}
	return logger, nil
}

// Setup applies level and format to the standard logrus logger, which backs
// every package-level logrus.WithField entry.
func Setup(level, format string, out io.Writer) error {
	return apply(logrus.StandardLogger(), level, format, out)
}

// ValidLevel reports whether level is understood by logrus.
func ValidLevel(level string) bool {
	_, err := logrus.ParseLevel(level)
	return err == nil
}

// ValidFormat reports whether format is FormatText or FormatJSON.
func ValidFormat(format string) bool {
	switch strings.ToLower(format) {
	case FormatText, FormatJSON:
		return true
	}
	return false
}

func apply(logger *logrus.Logger, level, format string, out io.Writer) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	switch strings.ToLower(format) {
	case FormatJSON:
		logger.SetFormatter(&logrus.JSONFormatter{})
	case FormatText, "":
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return fmt.Errorf("invalid log format %q (valid formats: %s, %s)", format, FormatText, FormatJSON)
	}

	logger.SetLevel(lvl)
	logger.SetOutput(out)
	return nil
}
