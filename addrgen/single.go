package addrgen

import "math/rand"

type SingleAddr Addr

var _ AddrGen = SingleAddr(0)

func (a SingleAddr) Addr(_ *rand.Rand) Addr {
	return Addr(a)
}

func (a SingleAddr) Power() uint64 {
	return 1
}
