// Package addrgen draws random IPv4 addresses and carves them into
// mask-aligned blocks.
package addrgen

import (
	"errors"
	"fmt"
	"math/rand"
	"net/netip"
	"slices"
	"strings"
)

type AddrGen interface {
	Addr(r *rand.Rand) Addr
	Power() uint64
}

var _ AddrGen = &AddrSet{}

// AddrSet picks one of its ranges with probability proportional to the
// range size, then an address uniformly inside it.
type AddrSet struct {
	addrRanges []AddrGen
	cumWeights []uint64
}

// DefaultSpec covers every address except 0.0.0.0.
const DefaultSpec = "0.0.0.1..255.255.255.255"

// ParseAddrSet parses a comma-separated list of range specs. Each term is
// a single address, a CIDR prefix or an inclusive "first..last" range.
func ParseAddrSet(spec string) (*AddrSet, error) {
	terms := strings.Split(spec, ",")
	addrRanges := make([]AddrGen, 0, len(terms))
	for _, addrRangeSpec := range terms {
		addrRangeSpec = strings.TrimSpace(addrRangeSpec)
		if addrRangeSpec == "" {
			continue
		}
		r, err := ParseAddrRangeSpec(addrRangeSpec)
		if err != nil {
			return nil, fmt.Errorf("addr range spec %q parse failed: %w", addrRangeSpec, err)
		}
		addrRanges = append(addrRanges, r)
	}
	if len(addrRanges) == 0 {
		return nil, errors.New("no valid address ranges specified")
	}
	return NewAddrSet(addrRanges...), nil
}

func NewAddrSet(addrRanges ...AddrGen) *AddrSet {
	cumWeights := make([]uint64, len(addrRanges))
	var currSum uint64
	for i, r := range addrRanges {
		currSum += r.Power()
		cumWeights[i] = currSum
	}
	return &AddrSet{
		addrRanges: addrRanges,
		cumWeights: cumWeights,
	}
}

func (as *AddrSet) Addr(r *rand.Rand) Addr {
	count := len(as.addrRanges)
	limit := as.cumWeights[count-1]
	random := uint64(r.Int63n(int64(limit)))
	idx, found := slices.BinarySearch(as.cumWeights, random)
	if found {
		idx++
	}
	return as.addrRanges[idx].Addr(r)
}

func (as *AddrSet) Power() uint64 {
	return as.cumWeights[len(as.addrRanges)-1]
}

func ParseAddrRangeSpec(spec string) (AddrGen, error) {
	if first, last, ok := strings.Cut(spec, ".."); ok {
		start, err := ParseAddr(first)
		if err != nil {
			return nil, fmt.Errorf("bad range start: %w", err)
		}
		end, err := ParseAddr(last)
		if err != nil {
			return nil, fmt.Errorf("bad range end: %w", err)
		}
		return NewAddrRange(start, end), nil
	}
	if strings.Contains(spec, "/") {
		prefix, err := netip.ParsePrefix(spec)
		if err != nil {
			return nil, err
		}
		if !prefix.Addr().Is4() {
			return nil, fmt.Errorf("not an IPv4 prefix: %q", spec)
		}
		start, err := AddrFromNetip(prefix.Masked().Addr())
		if err != nil {
			return nil, err
		}
		hostBits := 32 - prefix.Bits()
		end := Addr(uint64(start) + uint64(1)<<uint(hostBits) - 1)
		return NewAddrRange(start, end), nil
	}
	a, err := ParseAddr(spec)
	if err != nil {
		return nil, err
	}
	return SingleAddr(a), nil
}
