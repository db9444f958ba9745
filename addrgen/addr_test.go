package addrgen

import (
	"testing"
)

func TestAddrString(t *testing.T) {
	cases := []struct {
		addr Addr
		want string
	}{
		{0, "0.0.0.0"},
		{1, "0.0.0.1"},
		{0x0A000001, "10.0.0.1"},
		{0xC0A80101, "192.168.1.1"},
		{MaxAddr, "255.255.255.255"},
	}
	for _, c := range cases {
		if got := c.addr.String(); got != c.want {
			t.Errorf("Addr(%#x).String() = %q, want %q", uint32(c.addr), got, c.want)
		}
	}
}

func TestParseAddrRoundTrip(t *testing.T) {
	r := testRand()
	for i := 0; i < 10000; i++ {
		a := Addr(r.Uint32())
		s := a.String()
		b, err := ParseAddr(s)
		if err != nil {
			t.Fatalf("ParseAddr(%q): %v", s, err)
		}
		if b != a || b.String() != s {
			t.Fatalf("round trip mismatch: %q -> %s", s, b)
		}
	}
}

func TestParseAddrRejects(t *testing.T) {
	for _, s := range []string{"", "1.2.3", "1.2.3.4.5", "256.0.0.1", "01.2.3.4", "::1", "1.2.3.4/8", "a.b.c.d"} {
		if _, err := ParseAddr(s); err == nil {
			t.Errorf("ParseAddr(%q): expected error", s)
		}
	}
}
