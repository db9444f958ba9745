package addrgen

import (
	"math/rand"
)

type AddrRange struct {
	base Addr
	size uint64
}

var _ AddrGen = &AddrRange{}

func NewAddrRange(start, end Addr) *AddrRange {
	if end < start {
		return NewAddrRange(end, start)
	}

	return &AddrRange{
		base: start,
		size: uint64(end) - uint64(start) + 1,
	}
}

func (ar *AddrRange) Addr(r *rand.Rand) Addr {
	delta := uint64(r.Int63n(int64(ar.size)))
	return Addr(uint64(ar.base) + delta)
}

func (ar *AddrRange) Power() uint64 {
	return ar.size
}

func (ar *AddrRange) First() Addr {
	return ar.base
}

func (ar *AddrRange) Last() Addr {
	return Addr(uint64(ar.base) + ar.size - 1)
}
