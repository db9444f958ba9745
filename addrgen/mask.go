package addrgen

import "fmt"

// MaxHostBits is the largest block a sampler may produce: half of the
// address space.
const MaxHostBits = 31

// NetworkMask returns the mask keeping the high (32-hostBits) bits.
func NetworkMask(hostBits int) uint32 {
	return 0xFFFFFFFF &^ (uint32(1)<<uint(hostBits) - 1)
}

// Mask returns the base address of the hostBits-sized block containing addr.
func Mask(addr Addr, hostBits int) Addr {
	return Addr(uint32(addr) & NetworkMask(hostBits))
}

// Block is a mask-aligned run of 1<<HostBits consecutive addresses.
type Block struct {
	Base     Addr
	HostBits int
}

func NewBlock(addr Addr, hostBits int) (Block, error) {
	if hostBits < 0 || hostBits > MaxHostBits {
		return Block{}, fmt.Errorf("host bits %d out of range [0, %d]", hostBits, MaxHostBits)
	}
	return Block{
		Base:     Mask(addr, hostBits),
		HostBits: hostBits,
	}, nil
}

func (b Block) Size() uint64 {
	return uint64(1) << uint(b.HostBits)
}

func (b Block) Last() Addr {
	return Addr(uint64(b.Base) + b.Size() - 1)
}

func (b Block) Contains(a Addr) bool {
	return Mask(a, b.HostBits) == b.Base
}

func (b Block) String() string {
	return fmt.Sprintf("%s/%d", b.Base, 32-b.HostBits)
}
