// Package storage provides the in-memory record stores and their flat-file
// persistence.
package storage

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("carworld")

// readLines calls fn for every non-empty line in path. Trailing carriage
// returns are stripped so files edited on Windows still load. Lines have no
// length limit; an oversized line is handed to fn like any other.
func readLines(path string, fn func(lineNo int, line string)) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	lineNo := 0
	for {
		raw, err := r.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		if raw == "" && err != nil {
			return nil
		}
		lineNo++
		if line := strings.TrimRight(raw, "\r\n"); line != "" {
			fn(lineNo, line)
		}
		if err != nil {
			return nil
		}
	}
}

// writeLines truncates path and writes n lines produced by line.
func writeLines(path string, n int, line func(i int) string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to open %s for writing: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for i := 0; i < n; i++ {
		if _, err := w.WriteString(line(i) + "\n"); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}
