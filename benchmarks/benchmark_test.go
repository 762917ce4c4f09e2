package benchmarks

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	simdwc "github.com/biggeezerdevelopment/simdwc-go"
	"github.com/biggeezerdevelopment/simdwc-go/internal/scanner"
)

var (
	asciiText   []byte
	unicodeText []byte
	denseLines  []byte
)

func init() {
	// ~1MB of plain English-looking text
	line := []byte("the quick brown fox jumps over the lazy dog and keeps running\n")
	for len(asciiText) < 1<<20 {
		asciiText = append(asciiText, line...)
	}

	// Mixed-script text with multi-byte sequences throughout
	uline := []byte("héllo wörld 中文分词 τεστ текст 💩 mixed content line\n")
	for len(unicodeText) < 1<<20 {
		unicodeText = append(unicodeText, uline...)
	}

	denseLines = bytes.Repeat([]byte("x\n"), 1<<19)
}

func BenchmarkCountNewlines(b *testing.B) {
	b.SetBytes(int64(len(asciiText)))
	for i := 0; i < b.N; i++ {
		scanner.CountNewlines(asciiText)
	}
}

func BenchmarkCountNewlinesScalar(b *testing.B) {
	b.SetBytes(int64(len(asciiText)))
	for i := 0; i < b.N; i++ {
		scanner.CountNewlinesScalar(asciiText)
	}
}

func BenchmarkCountNewlinesDense(b *testing.B) {
	b.SetBytes(int64(len(denseLines)))
	for i := 0; i < b.N; i++ {
		scanner.CountNewlines(denseLines)
	}
}

func BenchmarkCountChunkLinesBytes(b *testing.B) {
	cfg := scanner.Config{Mode: scanner.ModeLinesBytes}
	b.SetBytes(int64(len(asciiText)))
	for i := 0; i < b.N; i++ {
		scanner.CountChunk(asciiText, scanner.State{}, cfg).Finish()
	}
}

func BenchmarkCountChunkFullASCII(b *testing.B) {
	cfg := scanner.Config{Mode: scanner.ModeFull, Semantics: scanner.SemanticsASCII}
	b.SetBytes(int64(len(asciiText)))
	for i := 0; i < b.N; i++ {
		scanner.CountChunk(asciiText, scanner.State{}, cfg).Finish()
	}
}

func BenchmarkCountChunkFullUnicode(b *testing.B) {
	cfg := scanner.Config{Mode: scanner.ModeFull, Semantics: scanner.SemanticsUnicode}
	b.SetBytes(int64(len(unicodeText)))
	for i := 0; i < b.N; i++ {
		scanner.CountChunk(unicodeText, scanner.State{}, cfg).Finish()
	}
}

// Baseline: the obvious bufio.Scanner + strings.Fields rendition.
func BenchmarkStdlibBaseline(b *testing.B) {
	b.SetBytes(int64(len(asciiText)))
	for i := 0; i < b.N; i++ {
		var lines, words int
		sc := bufio.NewScanner(bytes.NewReader(asciiText))
		for sc.Scan() {
			lines++
			words += len(strings.Fields(sc.Text()))
		}
		_ = lines
		_ = words
	}
}

func BenchmarkCountReader(b *testing.B) {
	b.SetBytes(int64(len(asciiText)))
	for i := 0; i < b.N; i++ {
		_, _ = simdwc.CountReader(bytes.NewReader(asciiText), simdwc.Full, simdwc.SemanticsUnicode)
	}
}
