package addrgen

import (
	"testing"
)

func TestSamplerSampleNonZero(t *testing.T) {
	s := NewSampler(testRand(), nil)
	for i := 0; i < 10000; i++ {
		if a := s.Sample(); a == 0 {
			t.Fatal("sampled 0.0.0.0")
		}
	}
}

func TestSamplerUniverse(t *testing.T) {
	s := NewSampler(testRand(), must(ParseAddrSet("10.20.0.0/16")))
	for i := 0; i < 1000; i++ {
		if a := s.Sample(); Mask(a, 16) != MustParseAddr("10.20.0.0") {
			t.Fatalf("sampled %s outside universe", a)
		}
	}
}

func TestSampleHostBitsBounds(t *testing.T) {
	cases := map[int]int{
		0:   0,
		1:   0,
		8:   7,
		16:  15,
		32:  31,
		33:  0,
		64:  31,
		65:  0,
		100: 3,
		512: 31,
	}
	s := NewSampler(testRand(), nil)
	for n, limit := range cases {
		seen := make(map[int]bool)
		for i := 0; i < 5000; i++ {
			bits := s.SampleHostBits(n)
			if bits < 0 || bits > limit {
				t.Fatalf("SampleHostBits(%d) = %d, want within [0, %d]", n, bits, limit)
			}
			seen[bits] = true
		}
		if len(seen) != limit+1 {
			t.Errorf("SampleHostBits(%d) hit %d distinct values, want %d", n, len(seen), limit+1)
		}
	}
}
