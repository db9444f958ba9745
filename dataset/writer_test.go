package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/SenseUnit/corpusgen/addrgen"
)

func TestGenerateAllFiles(t *testing.T) {
	dir := t.TempDir()
	s := NewSession(newSampler(7), 1000)
	paths, err := s.GenerateAll(dir, defaultCardinalities)
	if err != nil {
		t.Fatalf("GenerateAll: %v", err)
	}
	if len(paths) != len(defaultCardinalities) {
		t.Fatalf("expected %d files, got %d", len(defaultCardinalities), len(paths))
	}
	for i, n := range defaultCardinalities {
		if want := filepath.Join(dir, FileName(n)); paths[i] != want {
			t.Errorf("got path %q, want %q", paths[i], want)
		}
		data, err := os.ReadFile(paths[i])
		if err != nil {
			t.Fatal(err)
		}
		if strings.HasSuffix(string(data), "\n") {
			t.Errorf("%s ends with a newline", paths[i])
		}
		lines := strings.Split(string(data), "\n")
		if len(lines) != n {
			t.Errorf("%s has %d lines, want %d", paths[i], len(lines), n)
		}
		seen := make(map[string]bool, n)
		for _, line := range lines {
			a, err := addrgen.ParseAddr(line)
			if err != nil {
				t.Fatalf("%s: bad line %q: %v", paths[i], line, err)
			}
			if a.String() != line {
				t.Errorf("%s: %q reformats as %q", paths[i], line, a)
			}
			if seen[line] {
				t.Errorf("%s: duplicate line %q", paths[i], line)
			}
			seen[line] = true
		}
	}
}

func TestGenerateAllMissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing")
	s := NewSession(newSampler(8), 1000)
	paths, err := s.GenerateAll(dir, []int{8, 16})
	if err == nil {
		t.Fatal("expected error")
	}
	if len(paths) != 0 {
		t.Errorf("expected no written files, got %v", paths)
	}
}

func TestWriteSingleLine(t *testing.T) {
	dir := t.TempDir()
	ds := &Dataset{Cardinality: 1, Addrs: []addrgen.Addr{addrgen.MustParseAddr("203.0.113.9")}}
	path, err := Write(dir, ds)
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "203.0.113.9" {
		t.Errorf("unexpected content %q", data)
	}
}
