package scanner

import (
	"strings"
	"testing"
)

func countAll(input []byte, cfg Config) Counts {
	return CountChunk(input, State{}, cfg).Finish()
}

var fullUnicode = Config{Mode: ModeFull, Semantics: SemanticsUnicode}

func TestCountChunk_Scenarios(t *testing.T) {
	tests := []struct {
		name  string
		input string
		cfg   Config
		want  Counts
	}{
		{
			"simple ascii",
			"hello world\n",
			fullUnicode,
			Counts{Lines: 1, Words: 2, Bytes: 12, Chars: 12},
		},
		{
			"no trailing newline",
			"no newline",
			fullUnicode,
			Counts{Lines: 0, Words: 2, Bytes: 10, Chars: 10},
		},
		{
			"empty input",
			"",
			fullUnicode,
			Counts{},
		},
		{
			"leading and trailing whitespace",
			"  one two  \n\n",
			fullUnicode,
			Counts{Lines: 2, Words: 2, Bytes: 13, Chars: 13},
		},
		{
			"multibyte words",
			"héllo wörld\n",
			fullUnicode,
			Counts{Lines: 1, Words: 2, Bytes: 14, Chars: 12},
		},
		{
			"ascii semantics treat nbsp as word bytes",
			"a b",
			Config{Mode: ModeFull, Semantics: SemanticsASCII},
			Counts{Words: 1, Bytes: 4, Chars: 4},
		},
		{
			"lines only",
			"one\ntwo\nthree",
			Config{Mode: ModeLinesOnly},
			Counts{Lines: 2, Bytes: 13},
		},
		{
			"lines and bytes",
			"one\ntwo\n",
			Config{Mode: ModeLinesBytes},
			Counts{Lines: 2, Bytes: 8},
		},
		{
			"bytes only",
			"abcdef\n",
			Config{Mode: ModeBytesOnly},
			Counts{Bytes: 7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := countAll([]byte(tt.input), tt.cfg); got != tt.want {
				t.Errorf("counts = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCountChunk_CategoryExclusion(t *testing.T) {
	tests := []struct {
		name  string
		input string
		words uint64
	}{
		{"zero width space joins", "hello​world", 1},
		{"word joiner joins", "hello⁠world", 1},
		{"zero width no-break space joins", "hello\uFEFFworld", 1},
		{"no-break space splits", "hello world", 2},
		{"em space splits", "hello world", 2},
		{"ogham space splits", "hello world", 2},
		{"line separator splits", "hello world", 2},
		{"nel splits", "helloworld", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := countAll([]byte(tt.input), fullUnicode)
			if got.Words != tt.words {
				t.Errorf("words = %d, want %d", got.Words, tt.words)
			}
		})
	}
}

func TestCountChunk_CLocaleSemantics(t *testing.T) {
	// 0xA0 is a separator byte under C-locale semantics, and every raw
	// byte is one character.
	input := []byte{'a', 0xA0, 'b'}
	got := countAll(input, Config{Mode: ModeFull, Semantics: SemanticsCLocale})
	want := Counts{Words: 2, Bytes: 3, Chars: 3}
	if got != want {
		t.Errorf("counts = %+v, want %+v", got, want)
	}
}

// N repetitions of <invalid lead><space> must report exactly N words: each
// malformed unit counts once and never merges with its neighbor.
func TestCountChunk_MalformedDeterminism(t *testing.T) {
	const n = 50
	input := make([]byte, 0, 2*n)
	for i := 0; i < n; i++ {
		input = append(input, 0xFF, ' ')
	}
	got := countAll(input, fullUnicode)
	if got.Words != n {
		t.Errorf("words = %d, want %d", got.Words, n)
	}
	if got.Chars != 2*n {
		t.Errorf("chars = %d, want %d (one replacement unit per invalid byte)", got.Chars, 2*n)
	}
}

// Splitting any buffer at any point and threading the state must equal the
// unsplit run. The inputs deliberately place multi-byte sequences,
// malformed bytes, and word boundaries at every possible split offset.
func TestCountChunk_StreamingLaw(t *testing.T) {
	inputs := []string{
		"hello world\n",
		"héllo wörld étoile\n",
		"中文 分词 测试\n",
		"a b c​d",
		"emoji 💩 split 💩💩 test",
		"\xFF\xFE bad \xE0\xA0 tail",
		"tabs\tand\nnewlines\r\nmixed   separators",
		strings.Repeat("wé ", 40),
	}

	cfgs := []Config{
		fullUnicode,
		{Mode: ModeFull, Semantics: SemanticsASCII},
		{Mode: ModeFull, Semantics: SemanticsCLocale},
		{Mode: ModeLinesBytes},
	}

	for _, in := range inputs {
		buf := []byte(in)
		for _, cfg := range cfgs {
			want := countAll(buf, cfg)
			for k := 0; k <= len(buf); k++ {
				st := CountChunk(buf[:k], State{}, cfg)
				st = CountChunk(buf[k:], st, cfg)
				if got := st.Finish(); got != want {
					t.Fatalf("cfg %+v input %q split %d: counts = %+v, want %+v",
						cfg, in, k, got, want)
				}
			}
		}
	}
}

// A three-way split exercises a pending prefix that survives an empty
// middle chunk.
func TestCountChunk_EmptyMiddleChunk(t *testing.T) {
	buf := []byte("a💩b")
	want := countAll(buf, fullUnicode)
	st := CountChunk(buf[:3], State{}, fullUnicode) // 'a' + 2 bytes of the emoji
	st = CountChunk(nil, st, fullUnicode)
	st = CountChunk(buf[3:], st, fullUnicode)
	if got := st.Finish(); got != want {
		t.Errorf("counts = %+v, want %+v", got, want)
	}
}

// A truncated sequence at end of stream flushes as one replacement unit.
func TestCountChunk_TruncatedAtEOF(t *testing.T) {
	got := countAll([]byte{'a', ' ', 0xE2, 0x82}, fullUnicode)
	want := Counts{Words: 2, Bytes: 4, Chars: 3}
	if got != want {
		t.Errorf("counts = %+v, want %+v", got, want)
	}
}

func TestCounts_MonoidLaws(t *testing.T) {
	vals := []Counts{
		{},
		{Lines: 1, Words: 2, Bytes: 12, Chars: 12},
		{Lines: 100, Words: 7, Bytes: 4096, Chars: 4000},
		{Bytes: 1},
	}
	for _, a := range vals {
		for _, b := range vals {
			if a.Add(b) != b.Add(a) {
				t.Errorf("Add not commutative for %+v, %+v", a, b)
			}
			for _, c := range vals {
				if a.Add(b).Add(c) != a.Add(b.Add(c)) {
					t.Errorf("Add not associative for %+v, %+v, %+v", a, b, c)
				}
			}
		}
		if a.Add(Counts{}) != a {
			t.Errorf("zero is not identity for %+v", a)
		}
	}
}

func TestCountChunk_Invariants(t *testing.T) {
	inputs := []string{
		"hello world\n",
		"\xFF\xFE\xFD",
		"中文mixed ascii\n\n",
		strings.Repeat("\n", 17),
	}
	for _, in := range inputs {
		c := countAll([]byte(in), fullUnicode)
		if c.Lines > c.Bytes {
			t.Errorf("%q: lines %d > bytes %d", in, c.Lines, c.Bytes)
		}
		if c.Chars > c.Bytes {
			t.Errorf("%q: chars %d > bytes %d", in, c.Chars, c.Bytes)
		}
		if c.Words > c.Chars {
			t.Errorf("%q: words %d > chars %d", in, c.Words, c.Chars)
		}
	}
}

func TestSelectMode(t *testing.T) {
	tests := []struct {
		lines, words, bytes, chars bool
		want                       Mode
	}{
		{false, false, true, false, ModeBytesOnly},
		{true, false, false, false, ModeLinesOnly},
		{true, false, true, false, ModeLinesBytes},
		{false, true, false, false, ModeFull},
		{false, false, false, true, ModeFull},
		{true, true, true, true, ModeFull},
		{false, false, false, false, ModeBytesOnly},
	}
	for _, tt := range tests {
		got := SelectMode(tt.lines, tt.words, tt.bytes, tt.chars)
		if got != tt.want {
			t.Errorf("SelectMode(%v, %v, %v, %v) = %v, want %v",
				tt.lines, tt.words, tt.bytes, tt.chars, got, tt.want)
		}
	}
}
