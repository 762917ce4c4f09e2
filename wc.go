// Package simdwc is a locale-aware, high-throughput text statistics
// engine. It produces exact line, word, byte, and character counts for
// byte streams, matching reference Unicode word-boundary semantics,
// decoding malformed UTF-8 deterministically, and scanning independent
// files in parallel with per-file failure isolation.
package simdwc

import (
	"io"

	"github.com/biggeezerdevelopment/simdwc-go/internal/encoding"
	"github.com/biggeezerdevelopment/simdwc-go/internal/readers"
	"github.com/biggeezerdevelopment/simdwc-go/internal/scanner"
)

// Counts holds the four stream statistics. Counts form a commutative
// monoid under Add, so partial results sum correctly in any order.
type Counts = scanner.Counts

// Mode declares which count fields are needed and selects the cheapest
// legal counting path.
type Mode = scanner.Mode

const (
	BytesOnly  = scanner.ModeBytesOnly
	LinesOnly  = scanner.ModeLinesOnly
	LinesBytes = scanner.ModeLinesBytes
	Full       = scanner.ModeFull
)

// SelectMode picks the cheapest mode sufficient for the requested fields.
func SelectMode(lines, words, bytes, chars bool) Mode {
	return scanner.SelectMode(lines, words, bytes, chars)
}

// Semantics selects the whitespace semantics used for word boundaries in
// Full mode.
type Semantics uint8

const (
	// SemanticsAuto resolves ASCII or Unicode from the locale environment
	// (LC_ALL, then LC_CTYPE, then LANG).
	SemanticsAuto Semantics = iota
	// SemanticsASCII splits on the POSIX whitespace bytes only.
	SemanticsASCII
	// SemanticsCLocale works byte-at-a-time and additionally splits on the
	// Latin-1 no-break-space byte. Never chosen by Auto; callers opt in.
	SemanticsCLocale
	// SemanticsUnicode decodes UTF-8 and splits on the Space_Separator
	// category plus the line, paragraph, and next-line separators.
	SemanticsUnicode
)

func (s Semantics) resolve() scanner.Semantics {
	switch s {
	case SemanticsASCII:
		return scanner.SemanticsASCII
	case SemanticsCLocale:
		return scanner.SemanticsCLocale
	case SemanticsUnicode:
		return scanner.SemanticsUnicode
	}
	if encoding.ResolveWordMode() == encoding.WordModeUnicode {
		return scanner.SemanticsUnicode
	}
	return scanner.SemanticsASCII
}

// CountReader counts one stream to EOF. On a read error the partial
// counts accumulated so far are returned along with the error.
func CountReader(r io.Reader, mode Mode, sem Semantics) (Counts, error) {
	return countStream(r, scanner.Config{Mode: mode, Semantics: sem.resolve()})
}

func countStream(r io.Reader, cfg scanner.Config) (Counts, error) {
	bufp := readers.GetBuf()
	defer readers.PutBuf(bufp)
	buf := *bufp

	var st scanner.State
	for {
		n, err := r.Read(buf)
		st = scanner.CountChunk(buf[:n], st, cfg)
		if err == io.EOF {
			return st.Finish(), nil
		}
		if err != nil {
			return st.Finish(), err
		}
	}
}
