// Package dataset assembles address corpora out of random subnet blocks and
// writes them as ip<N>.txt files.
//
// A Session owns the generator and remembers every block base it has
// handed out, so corpora produced by one session never share a network
// block. Inside a corpus every address is distinct: a candidate block whose
// members would repeat an address already in the corpus is rejected and
// resampled. Too many consecutive rejections end the run with
// ErrExhaustedAddressSpace.
package dataset

import (
	"errors"
	"fmt"

	"github.com/golang-collections/go-datastructures/bitarray"

	"github.com/SenseUnit/corpusgen/addrgen"
	"github.com/SenseUnit/corpusgen/logging"
)

var ErrExhaustedAddressSpace = errors.New("exhausted address space")

// BlockSource supplies candidate addresses and block sizes.
type BlockSource interface {
	Sample() addrgen.Addr
	SampleHostBits(n int) int
}

var _ BlockSource = &addrgen.Sampler{}

type Dataset struct {
	Cardinality int
	Addrs       []addrgen.Addr
	// Blocks lists accepted blocks in the order their members were appended.
	Blocks []addrgen.Block
}

func (d *Dataset) Lines() []string {
	lines := make([]string, len(d.Addrs))
	for i, a := range d.Addrs {
		lines[i] = a.String()
	}
	return lines
}

type Session struct {
	src        BlockSource
	maxRetries int
	usedBases  map[addrgen.Addr]int
	baseOrder  []addrgen.Addr
}

func NewSession(src BlockSource, maxRetries int) *Session {
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &Session{
		src:        src,
		maxRetries: maxRetries,
		usedBases:  make(map[addrgen.Addr]int),
	}
}

// BaseOwner reports which corpus cardinality claimed base.
func (s *Session) BaseOwner(base addrgen.Addr) (int, bool) {
	n, ok := s.usedBases[base]
	return n, ok
}

// UsedBases returns block bases in the order they were claimed.
func (s *Session) UsedBases() []addrgen.Addr {
	res := make([]addrgen.Addr, len(s.baseOrder))
	copy(res, s.baseOrder)
	return res
}

// Assemble builds a corpus of exactly n distinct addresses.
func (s *Session) Assemble(n int) (*Dataset, error) {
	if n < 1 {
		return nil, fmt.Errorf("cardinality must be positive, got %d", n)
	}
	ds := &Dataset{
		Cardinality: n,
		Addrs:       make([]addrgen.Addr, 0, n),
	}
	seen := bitarray.NewSparseBitArray()
	logger := logging.With("cardinality", n)

	rejected := 0
	for len(ds.Addrs) < n {
		if rejected >= s.maxRetries {
			return nil, fmt.Errorf("%w: %d consecutive rejected blocks with %d of %d addresses placed",
				ErrExhaustedAddressSpace, rejected, len(ds.Addrs), n)
		}

		hostBits := s.src.SampleHostBits(n)
		block, err := addrgen.NewBlock(s.src.Sample(), hostBits)
		if err != nil {
			return nil, fmt.Errorf("bad block sample: %w", err)
		}

		if owner, used := s.usedBases[block.Base]; used {
			logger.Debug("block base already used", "block", block, "owner", owner)
			rejected++
			continue
		}

		members := block.Expand(n - len(ds.Addrs))
		clash, err := anySeen(seen, members)
		if err != nil {
			return nil, err
		}
		if clash {
			logger.Debug("block overlaps corpus", "block", block)
			rejected++
			continue
		}

		for _, a := range members {
			if err := seen.SetBit(uint64(a)); err != nil {
				return nil, fmt.Errorf("can't mark address %s: %w", a, err)
			}
		}
		s.usedBases[block.Base] = n
		s.baseOrder = append(s.baseOrder, block.Base)
		ds.Addrs = append(ds.Addrs, members...)
		ds.Blocks = append(ds.Blocks, block)
		rejected = 0
		logger.Debug("block accepted", "block", block, "members", len(members), "total", len(ds.Addrs))
	}
	return ds, nil
}

func anySeen(seen bitarray.BitArray, addrs []addrgen.Addr) (bool, error) {
	for _, a := range addrs {
		ok, err := seen.GetBit(uint64(a))
		if err != nil {
			return false, fmt.Errorf("can't look up address %s: %w", a, err)
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}
