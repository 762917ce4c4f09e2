package scanner

// Mode declares which count fields the caller needs and therefore which
// fast path is legal.
type Mode uint8

const (
	ModeBytesOnly Mode = iota
	ModeLinesOnly
	ModeLinesBytes
	ModeFull
)

func (m Mode) String() string {
	switch m {
	case ModeBytesOnly:
		return "bytes"
	case ModeLinesOnly:
		return "lines"
	case ModeLinesBytes:
		return "lines+bytes"
	case ModeFull:
		return "full"
	}
	return "invalid"
}

// NeedsDecode reports whether the mode requires per-unit classification.
func (m Mode) NeedsDecode() bool {
	return m == ModeFull
}

// SelectMode picks the cheapest counting mode sufficient for the requested
// fields. Word or character counts force Full (per-unit decoding is
// unavoidable for those); otherwise the decode-free line/byte paths apply.
func SelectMode(lines, words, bytes, chars bool) Mode {
	switch {
	case words || chars:
		return ModeFull
	case lines && bytes:
		return ModeLinesBytes
	case lines:
		return ModeLinesOnly
	default:
		return ModeBytesOnly
	}
}
