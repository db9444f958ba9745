package addrgen

import (
	"encoding/binary"
	"fmt"
	"net/netip"
)

// Addr is an IPv4 address in host integer form.
type Addr uint32

const MaxAddr Addr = 0xFFFFFFFF

func (a Addr) As4() [4]byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(a))
	return b
}

func (a Addr) String() string {
	return netip.AddrFrom4(a.As4()).String()
}

func AddrFromNetip(ip netip.Addr) (Addr, error) {
	ip = ip.Unmap()
	if !ip.Is4() {
		return 0, fmt.Errorf("not an IPv4 address: %s", ip)
	}
	b := ip.As4()
	return Addr(binary.BigEndian.Uint32(b[:])), nil
}

// ParseAddr parses a dotted-quad IPv4 address. Octets with leading zeros
// are rejected, so ParseAddr(s).String() == s for every accepted s.
func ParseAddr(s string) (Addr, error) {
	ip, err := netip.ParseAddr(s)
	if err != nil {
		return 0, err
	}
	if !ip.Is4() {
		return 0, fmt.Errorf("not an IPv4 address: %q", s)
	}
	return AddrFromNetip(ip)
}

func MustParseAddr(s string) Addr {
	a, err := ParseAddr(s)
	if err != nil {
		panic(err)
	}
	return a
}
