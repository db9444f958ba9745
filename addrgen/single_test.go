package addrgen

import (
	"testing"
)

func TestSingleAddr(t *testing.T) {
	s := "198.51.100.7"
	g := must(ParseAddrRangeSpec(s))
	if _, ok := g.(SingleAddr); !ok {
		t.Fatalf("unexpected generator type %T", g)
	}
	if r := g.Addr(nil).String(); r != s {
		t.Errorf("expected: %q, got: %q", s, r)
	}
	if r := g.Power(); r != 1 {
		t.Errorf("expected: 1, got: %d", r)
	}
}
