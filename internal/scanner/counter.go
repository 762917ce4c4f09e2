package scanner

import "github.com/biggeezerdevelopment/simdwc-go/internal/encoding"

// Counts holds the four stream statistics. It is a commutative monoid
// under Add with the zero value as identity, so partial counts may be
// summed across chunks, files, and workers in any order.
type Counts struct {
	Lines uint64
	Words uint64
	Bytes uint64
	Chars uint64
}

// Add returns the element-wise sum of c and o.
func (c Counts) Add(o Counts) Counts {
	return Counts{
		Lines: c.Lines + o.Lines,
		Words: c.Words + o.Words,
		Bytes: c.Bytes + o.Bytes,
		Chars: c.Chars + o.Chars,
	}
}

// Semantics selects how word separators are classified in Full mode.
type Semantics uint8

const (
	// SemanticsASCII classifies per raw byte against the POSIX space set.
	SemanticsASCII Semantics = iota
	// SemanticsCLocale classifies per raw byte, additionally treating the
	// Latin-1 no-break-space byte as a separator (C-locale iswspace).
	SemanticsCLocale
	// SemanticsUnicode decodes UTF-8 and classifies per codepoint.
	SemanticsUnicode
)

// Config fixes the counting mode and word semantics for one stream.
type Config struct {
	Mode      Mode
	Semantics Semantics
}

// State is the boundary state threaded by value between successive
// CountChunk calls on one stream. The zero value is the start state: word
// tracking begins outside a word, so leading whitespace never creates a
// spurious word. pending carries a valid-so-far UTF-8 prefix cut off at a
// chunk edge, which is what makes counting independent of how the stream
// is chunked.
type State struct {
	Counts   Counts
	inWord   bool
	pending  [3]byte
	npending uint8
}

// CountChunk consumes one chunk and returns the advanced state. Feeding a
// buffer in two pieces, threading the state, must produce exactly the
// counts of feeding it whole.
func CountChunk(buf []byte, st State, cfg Config) State {
	st.Counts.Bytes += uint64(len(buf))
	switch cfg.Mode {
	case ModeBytesOnly:
		return st
	case ModeLinesOnly, ModeLinesBytes:
		st.Counts.Lines += CountNewlines(buf)
		return st
	case ModeFull:
	default:
		panic("scanner: invalid counting mode")
	}
	if cfg.Semantics == SemanticsUnicode {
		return countChunkUnicode(buf, st)
	}
	return countChunkBytes(buf, st, encoding.SpaceTable(cfg.Semantics == SemanticsCLocale))
}

// Finish flushes a pending truncated sequence as one replacement unit and
// returns the final counts for the stream.
func (st State) Finish() Counts {
	if st.npending > 0 {
		st = countUnit(encoding.ReplacementRune, st)
	}
	return st.Counts
}

func countChunkBytes(buf []byte, st State, space *[256]bool) State {
	for _, c := range buf {
		st.Counts.Chars++
		if c == '\n' {
			st.Counts.Lines++
		}
		if space[c] {
			st.inWord = false
		} else if !st.inWord {
			st.Counts.Words++
			st.inWord = true
		}
	}
	return st
}

func countChunkUnicode(buf []byte, st State) State {
	i := 0
	if st.npending > 0 {
		var seq [4]byte
		k := int(st.npending)
		need := encoding.SeqLen(st.pending[0])
		copy(seq[:], st.pending[:k])
		take := min(need-k, len(buf))
		copy(seq[k:], buf[:take])
		total := k + take
		r, size := encoding.DecodeUnit(seq[:total])
		if size == total && total < need {
			// Still an incomplete valid prefix; the chunk was absorbed whole.
			copy(st.pending[:], seq[:total])
			st.npending = uint8(total)
			return st
		}
		// The decode consumed all carried bytes plus size-k bytes of buf,
		// completing the sequence or stopping at the first byte the next
		// iteration must re-examine.
		st.npending = 0
		i = size - k
		st = countUnit(r, st)
	}

	ascii := encoding.SpaceTable(false)
	for i < len(buf) {
		c := buf[i]
		if c < 0x80 {
			// ASCII fast path: no decode.
			st.Counts.Chars++
			if c == '\n' {
				st.Counts.Lines++
			}
			if ascii[c] {
				st.inWord = false
			} else if !st.inWord {
				st.Counts.Words++
				st.inWord = true
			}
			i++
			continue
		}
		rem := len(buf) - i
		r, size := encoding.DecodeUnit(buf[i:])
		if size == rem && encoding.SeqLen(c) > rem {
			// Valid prefix truncated at the chunk edge; carry it over.
			copy(st.pending[:], buf[i:])
			st.npending = uint8(rem)
			return st
		}
		i += size
		st = countUnit(r, st)
	}
	return st
}

// countUnit applies one decoded unit to the two-state word machine.
// Multi-byte codepoints are never newlines, so only the word and char
// counts move here.
func countUnit(r rune, st State) State {
	st.Counts.Chars++
	if encoding.IsSpaceUnicode(r) {
		st.inWord = false
	} else if !st.inWord {
		st.Counts.Words++
		st.inWord = true
	}
	return st
}
