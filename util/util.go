package util

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	securejoin "github.com/cyphar/filepath-securejoin"
)

const (
	MaxLineBuf = 1024 * 1024
)

// ResolveIn joins name onto dir without letting it escape dir.
func ResolveIn(dir, name string) (string, error) {
	path, err := securejoin.SecureJoin(dir, name)
	if err != nil {
		return "", fmt.Errorf("can't resolve %q in %q: %w", name, dir, err)
	}
	return path, nil
}

// WriteLines writes lines separated by newlines. With trailingNewline the
// last line is terminated as well.
func WriteLines(path string, lines []string, trailingNewline bool) error {
	return WriteAtomic(path, func(w io.Writer) error {
		return writeLines(bufio.NewWriter(w), lines, trailingNewline)
	})
}

// WriteAtomic passes write a temporary file in the directory of path and
// renames it over path once write and close succeed. On any failure the
// temporary file is removed and path is left untouched.
func WriteAtomic(path string, write func(io.Writer) error) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("can't create temporary file for %q: %w", path, err)
	}
	tmpName := f.Name()
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmpName)
		}
	}()

	if err = write(f); err != nil {
		return fmt.Errorf("write to %q failed: %w", tmpName, err)
	}
	if err = f.Chmod(0o644); err != nil {
		return fmt.Errorf("can't set mode on %q: %w", tmpName, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("can't close %q: %w", tmpName, err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("can't move %q into place: %w", path, err)
	}
	return nil
}

func writeLines(w *bufio.Writer, lines []string, trailingNewline bool) error {
	for i, line := range lines {
		if i > 0 {
			if _, err := w.WriteString("\n"); err != nil {
				return err
			}
		}
		if _, err := w.WriteString(line); err != nil {
			return err
		}
	}
	if trailingNewline && len(lines) > 0 {
		if _, err := w.WriteString("\n"); err != nil {
			return err
		}
	}
	return w.Flush()
}

// ReadLines returns the lines of the file at path with line terminators
// (including a trailing CR) stripped.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineBuf)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read from %q failed: %w", path, err)
	}
	return lines, nil
}
