// Package logging points logrus at a rotating log file. The terminal
// belongs to the TUI while a program is running, so nothing may be
// written to stdout or stderr.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
)

func Setup(log *logrus.Logger, path string, level logrus.Level) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   path,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Level:      level,
		Formatter:  &logrus.TextFormatter{DisableColors: true},
	})
	if err != nil {
		return err
	}

	log.SetOutput(io.Discard)
	log.SetLevel(level)
	log.AddHook(hook)
	return nil
}
