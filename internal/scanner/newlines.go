package scanner

import (
	"encoding/binary"
	"math/bits"
)

const (
	laneWidth = 8
	nlLanes   = 0x0A0A0A0A0A0A0A0A
	hiLanes   = 0x8080808080808080
)

// CountNewlines counts '\n' bytes in buf, processing fixed-width uint64
// lanes with a byte-by-byte scalar tail. On CPUs where the wide-lane probe
// succeeds a 32-byte unrolled variant runs instead. Both must agree with
// CountNewlinesScalar for every input, including empty buffers and lengths
// off-by-one from the lane width.
func CountNewlines(buf []byte) uint64 {
	if wideLanes {
		return countNewlinesWide(buf)
	}
	return countNewlinesSWAR(buf)
}

// zeroByteMask sets the high bit of each lane byte that is zero. The
// (v&0x7F)+0x7F form keeps every per-byte sum below 0xFF, so borrows never
// cross byte boundaries and the mask is exact per byte.
func zeroByteMask(v uint64) uint64 {
	const lo7 = ^uint64(hiLanes)
	return ^(((v & lo7) + lo7) | v) & hiLanes
}

func countNewlinesSWAR(buf []byte) uint64 {
	var n uint64
	i := 0
	for ; i+laneWidth <= len(buf); i += laneWidth {
		v := binary.LittleEndian.Uint64(buf[i:]) ^ nlLanes
		n += uint64(bits.OnesCount64(zeroByteMask(v)))
	}
	for ; i < len(buf); i++ {
		if buf[i] == '\n' {
			n++
		}
	}
	return n
}

func countNewlinesWide(buf []byte) uint64 {
	var n uint64
	i := 0
	for ; i+4*laneWidth <= len(buf); i += 4 * laneWidth {
		v0 := binary.LittleEndian.Uint64(buf[i:]) ^ nlLanes
		v1 := binary.LittleEndian.Uint64(buf[i+laneWidth:]) ^ nlLanes
		v2 := binary.LittleEndian.Uint64(buf[i+2*laneWidth:]) ^ nlLanes
		v3 := binary.LittleEndian.Uint64(buf[i+3*laneWidth:]) ^ nlLanes
		n += uint64(bits.OnesCount64(zeroByteMask(v0)) +
			bits.OnesCount64(zeroByteMask(v1)) +
			bits.OnesCount64(zeroByteMask(v2)) +
			bits.OnesCount64(zeroByteMask(v3)))
	}
	return n + countNewlinesSWAR(buf[i:])
}

// CountNewlinesScalar is the reference implementation the lane paths must
// match exactly. Exported for the equivalence tests and benchmarks.
func CountNewlinesScalar(buf []byte) uint64 {
	var n uint64
	for _, c := range buf {
		if c == '\n' {
			n++
		}
	}
	return n
}
