package addrgen

import (
	"testing"
)

func TestNetworkMask(t *testing.T) {
	cases := map[int]uint32{
		0:  0xFFFFFFFF,
		1:  0xFFFFFFFE,
		3:  0xFFFFFFF8,
		8:  0xFFFFFF00,
		24: 0xFF000000,
		31: 0x80000000,
	}
	for bits, want := range cases {
		if got := NetworkMask(bits); got != want {
			t.Errorf("NetworkMask(%d) = %#x, want %#x", bits, got, want)
		}
	}
}

func TestMaskProperties(t *testing.T) {
	r := testRand()
	for i := 0; i < 10000; i++ {
		addr := Addr(r.Uint32())
		bits := r.Intn(MaxHostBits + 1)
		base := Mask(addr, bits)
		if base > addr {
			t.Fatalf("Mask(%s, %d) = %s is above the address", addr, bits, base)
		}
		if uint32(base)&(uint32(1)<<uint(bits)-1) != 0 {
			t.Fatalf("Mask(%s, %d) = %s is not aligned", addr, bits, base)
		}
	}
}

func TestNewBlock(t *testing.T) {
	b := must(NewBlock(MustParseAddr("10.1.2.77"), 4))
	if b.Base.String() != "10.1.2.64" {
		t.Errorf("unexpected base: %s", b.Base)
	}
	if b.Size() != 16 || b.Last().String() != "10.1.2.79" {
		t.Errorf("unexpected extent: %d addresses up to %s", b.Size(), b.Last())
	}
	if !b.Contains(MustParseAddr("10.1.2.70")) || b.Contains(MustParseAddr("10.1.2.80")) {
		t.Error("unexpected membership")
	}
	if b.String() != "10.1.2.64/28" {
		t.Errorf("unexpected string: %s", b)
	}
	for _, bits := range []int{-1, 32} {
		if _, err := NewBlock(1, bits); err == nil {
			t.Errorf("NewBlock with %d host bits: expected error", bits)
		}
	}
}
