package addrgen

import (
	"math"
	"testing"
)

const testArraySize = 100
const testIterCount = 100000

func must[T any](x T, err error) T {
	if err != nil {
		panic(err)
	}
	return x
}

func TestAddrRangeSingle(t *testing.T) {
	r := testRand()
	for _, sample := range []string{"127.0.0.1", "0.0.0.0", "255.255.255.255"} {
		a := MustParseAddr(sample)
		g := NewAddrRange(a, a)
		if res := g.Addr(r).String(); res != sample {
			t.Errorf("expected: %q; got: %q", sample, res)
		}
	}
}

func TestAddrRangeReversed(t *testing.T) {
	g := NewAddrRange(MustParseAddr("10.0.0.9"), MustParseAddr("10.0.0.0"))
	if g.First() != MustParseAddr("10.0.0.0") || g.Last() != MustParseAddr("10.0.0.9") {
		t.Errorf("unexpected bounds: %s..%s", g.First(), g.Last())
	}
	if g.Power() != 10 {
		t.Errorf("unexpected power: %d", g.Power())
	}
}

func TestAddrRangeUniform(t *testing.T) {
	var arr [testArraySize]int
	base := MustParseAddr("10.0.0.0")
	g := NewAddrRange(base, base+testArraySize-1)
	r := testRand()

	for i := 0; i < testIterCount; i++ {
		a := g.Addr(r)
		if a < base || a >= base+testArraySize {
			t.Fatalf("address out of range: %s", a)
		}
		arr[a-base]++
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

func TestAddrRangeFromPrefix(t *testing.T) {
	g := must(ParseAddrRangeSpec("192.168.7.77/22"))
	ar, ok := g.(*AddrRange)
	if !ok {
		t.Fatalf("unexpected generator type %T", g)
	}
	if ar.First().String() != "192.168.4.0" || ar.Last().String() != "192.168.7.255" {
		t.Errorf("unexpected bounds: %s..%s", ar.First(), ar.Last())
	}
}
