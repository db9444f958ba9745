package addrgen

// Expand lists the members of the hostBits-sized block starting at base in
// ascending order, stopping after 1<<hostBits members or quota members,
// whichever comes first.
func Expand(base Addr, hostBits int, quota int) []Addr {
	if quota <= 0 {
		return nil
	}
	size := uint64(1) << uint(hostBits)
	n := uint64(quota)
	if size < n {
		n = size
	}
	res := make([]Addr, 0, n)
	for i := uint64(0); i < n; i++ {
		res = append(res, Addr((uint64(base)+i)&uint64(MaxAddr)))
	}
	return res
}

// Expand lists up to quota members of the block.
func (b Block) Expand(quota int) []Addr {
	return Expand(b.Base, b.HostBits, quota)
}
