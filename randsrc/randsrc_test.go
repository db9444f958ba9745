package randsrc

import (
	"math"
	"testing"
)

const testArraySize = 100
const testIterCount = 100000

func TestUniform(t *testing.T) {
	var arr [testArraySize]int
	r, _ := New(0)
	for i := 0; i < testIterCount; i++ {
		arr[r.Intn(testArraySize)]++
	}

	sum := 0
	for i := 0; i < testArraySize; i++ {
		sum += int(arr[i])
	}
	if sum != testIterCount {
		t.Errorf("unexpected sum: %d", sum)
	}

	mx := float64(testIterCount) / float64(testArraySize)
	sigmaSquared := mx * float64(testArraySize-1) / float64(testArraySize)
	sigma := math.Sqrt(sigmaSquared)
	t.Logf("sigma = %.3f", sigma)
	t.Logf("5*sigma = %.3f", 5*sigma)

	for i := 0; i < testArraySize; i++ {
		if math.Abs(float64(arr[i])-mx) > 5*sigma {
			t.Errorf("arr[%d]=%d too far from mx=%.3f", i, arr[i], mx)
		}
	}
}

func TestSeedReproducible(t *testing.T) {
	a, seedA := New(42)
	b, seedB := New(seedA)
	if seedA != 42 || seedB != 42 {
		t.Fatalf("unexpected seeds: %d, %d", seedA, seedB)
	}
	for i := 0; i < 1000; i++ {
		if x, y := a.Uint32(), b.Uint32(); x != y {
			t.Fatalf("step %d: %d != %d", i, x, y)
		}
	}
}

func TestZeroSeedPicksOne(t *testing.T) {
	_, seed := New(0)
	if seed <= 0 {
		t.Errorf("expected positive seed, got %d", seed)
	}
}
