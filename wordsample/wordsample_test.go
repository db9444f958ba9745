package wordsample

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func dictionary(n int) []string {
	res := make([]string, n)
	for i := range res {
		res[i] = fmt.Sprintf("Word%05d", i)
	}
	return res
}

func TestCardinalities(t *testing.T) {
	cases := map[int][]int{
		0:      nil,
		15:     nil,
		16:     {8},
		32:     {8, 16},
		100:    {8, 16, 32},
		466544: {8, 16, 32, 64, 128, 256, 512, 1024, 2048, 4096, 8192, 16384, 32768, 65536, 131072},
	}
	for total, want := range cases {
		if got := Cardinalities(total); !reflect.DeepEqual(got, want) {
			t.Errorf("Cardinalities(%d) = %v, want %v", total, got, want)
		}
	}
}

func TestNormalize(t *testing.T) {
	got := Normalize([]string{"Apple", " apple", "", "Banana\r", "cherry", "APPLE"})
	want := []string{"apple", "banana", "cherry"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSampleDistinct(t *testing.T) {
	words := dictionary(1000)
	r := testRand()
	for _, n := range []int{0, 1, 8, 500, 1000} {
		got, err := Sample(r, words, n)
		if err != nil {
			t.Fatalf("Sample(%d): %v", n, err)
		}
		if len(got) != n {
			t.Fatalf("Sample(%d) returned %d words", n, len(got))
		}
		seen := make(map[string]bool, n)
		for _, w := range got {
			if seen[w] {
				t.Fatalf("Sample(%d): duplicate %q", n, w)
			}
			seen[w] = true
		}
	}
	if _, err := Sample(r, words, 1001); err == nil {
		t.Error("expected error when sampling more words than available")
	}
}

func TestGenerateAll(t *testing.T) {
	dir := t.TempDir()
	paths, err := GenerateAll(testRand(), dictionary(100), dir, nil)
	if err != nil {
		t.Fatalf("GenerateAll: %v", err)
	}
	if len(paths) != 3 {
		t.Fatalf("expected 3 corpora, got %v", paths)
	}
	for i, n := range []int{8, 16, 32} {
		if want := filepath.Join(dir, FileName(n)); paths[i] != want {
			t.Errorf("got %q, want %q", paths[i], want)
		}
		data, err := os.ReadFile(paths[i])
		if err != nil {
			t.Fatal(err)
		}
		lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
		if len(lines) != n {
			t.Errorf("%s: %d lines, want %d", paths[i], len(lines), n)
		}
		for _, l := range lines {
			if l != strings.ToLower(l) {
				t.Errorf("%s: %q is not lowercase", paths[i], l)
			}
		}
	}
}
