package encoding

// Whitespace classification backing the word-boundary state machine. All
// three modes dispatch through fixed lookup tables (256-entry byte tables,
// packed bitmap for codepoints) so classification never falls back to a
// per-call property scan.

// asciiSpace marks the POSIX whitespace bytes: space, tab, LF, VT, FF, CR.
var asciiSpace = [256]bool{
	' ': true, '\t': true, '\n': true, '\v': true, '\f': true, '\r': true,
}

// cLocaleSpace extends the ASCII set with the Latin-1 no-break-space byte,
// matching iswspace() under the C locale rather than Unicode semantics.
var cLocaleSpace = [256]bool{
	' ': true, '\t': true, '\n': true, '\v': true, '\f': true, '\r': true,
	0xA0: true,
}

// unicodeSpaceList enumerates every codepoint treated as a word separator
// in Unicode mode: the Space_Separator (Zs) category plus the line and
// paragraph separators and NEL. Format-category lookalikes (U+200B
// ZERO WIDTH SPACE, U+2060 WORD JOINER, U+FEFF ZERO WIDTH NO-BREAK SPACE)
// are deliberately absent: they never split a word.
var unicodeSpaceList = []rune{
	0x0009, 0x000A, 0x000B, 0x000C, 0x000D, 0x0020,
	0x0085, // NEL
	0x00A0,
	0x1680,
	0x2000, 0x2001, 0x2002, 0x2003, 0x2004, 0x2005,
	0x2006, 0x2007, 0x2008, 0x2009, 0x200A,
	0x2028, 0x2029, // LS, PS
	0x202F,
	0x205F,
	0x3000,
}

const maxSpaceRune = 0x3000

// unicodeSpaceBits is a packed bitmap over [0, maxSpaceRune]; one bit per
// codepoint, built once at init.
var unicodeSpaceBits [maxSpaceRune/64 + 1]uint64

func init() {
	for _, r := range unicodeSpaceList {
		unicodeSpaceBits[r>>6] |= 1 << (uint(r) & 63)
	}
}

// IsSpaceASCII reports whether b separates words in ASCII mode.
func IsSpaceASCII(b byte) bool {
	return asciiSpace[b]
}

// IsSpaceCLocale reports whether b separates words in C-locale byte mode.
func IsSpaceCLocale(b byte) bool {
	return cLocaleSpace[b]
}

// IsSpaceUnicode reports whether r separates words in Unicode mode.
func IsSpaceUnicode(r rune) bool {
	if uint32(r) > maxSpaceRune {
		return false
	}
	return unicodeSpaceBits[r>>6]&(1<<(uint(r)&63)) != 0
}

// SpaceTable returns the byte classification table for the byte-at-a-time
// modes, letting the counting loop index one table regardless of mode.
func SpaceTable(cLocale bool) *[256]bool {
	if cLocale {
		return &cLocaleSpace
	}
	return &asciiSpace
}
