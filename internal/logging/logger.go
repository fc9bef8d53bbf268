// Package logging configures the leveled go-logging backend shared by every
// carworld package.
package logging

import (
	"io"
	"os"

	"github.com/op/go-logging"
)

// Module is the logger name used across carworld.
const Module = "carworld"

const format = `%{time:2006-01-02 15:04:05} %{level:.5s}     %{message}`

// Setup sends log records at or above level to stderr. Level values are the
// go-logging names: DEBUG, INFO, NOTICE, WARNING, ERROR, CRITICAL.
func Setup(level string) error {
	return SetupWriter(os.Stderr, level)
}

// SetupWriter is Setup with an explicit destination.
func SetupWriter(w io.Writer, level string) error {
	baseBackend := logging.NewLogBackend(w, "", 0)
	backendFormatter := logging.NewBackendFormatter(baseBackend, logging.MustStringFormatter(format))

	backendLeveled := logging.AddModuleLevel(backendFormatter)
	levelCode, err := logging.LogLevel(level)
	if err != nil {
		return err
	}
	backendLeveled.SetLevel(levelCode, "")

	logging.SetBackend(backendLeveled)
	return nil
}
