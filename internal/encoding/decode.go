package encoding

// ReplacementRune is substituted for every malformed sequence. Each
// substitution accounts for exactly one unit in the character count.
const ReplacementRune = '�'

// acceptRange bounds the second byte of a multi-byte sequence. The first
// continuation byte carries the overlong/surrogate/out-of-range checks;
// later continuations always accept 0x80-0xBF.
type acceptRange struct {
	lo byte
	hi byte
}

// seqLen maps a lead byte to the total length of the sequence it starts,
// or 0 if the byte cannot start a sequence (stray continuation, overlong
// lead 0xC0/0xC1, or a lead above the encoding space).
var seqLen = [256]uint8{}

func init() {
	for i := 0x00; i <= 0x7F; i++ {
		seqLen[i] = 1
	}
	for i := 0xC2; i <= 0xDF; i++ {
		seqLen[i] = 2
	}
	for i := 0xE0; i <= 0xEF; i++ {
		seqLen[i] = 3
	}
	for i := 0xF0; i <= 0xF4; i++ {
		seqLen[i] = 4
	}
}

// SeqLen reports the expected total byte length of the sequence started by
// lead, or 0 when lead cannot start one.
func SeqLen(lead byte) int {
	return int(seqLen[lead])
}

// DecodeUnit decodes one codepoint from the front of b, which must be
// non-empty. Malformed input yields (ReplacementRune, n) where n covers the
// lead plus only the continuation bytes that were themselves valid, so a
// byte that could start a valid sequence is never absorbed: the next call
// re-examines it from its own start. Overlong forms and the UTF-16
// surrogate range are rejected at the first continuation byte. A truncated
// but so-far-valid prefix at the end of b also yields ReplacementRune with
// n == len(b); callers that can supply more bytes should detect this case
// via SeqLen before treating it as malformed.
func DecodeUnit(b []byte) (r rune, size int) {
	c0 := b[0]
	if c0 < 0x80 {
		return rune(c0), 1
	}

	need := int(seqLen[c0])
	if need == 0 {
		return ReplacementRune, 1
	}

	accept := acceptRange{0x80, 0xBF}
	switch c0 {
	case 0xE0:
		accept.lo = 0xA0 // reject overlong 3-byte forms
	case 0xED:
		accept.hi = 0x9F // reject UTF-16 surrogates
	case 0xF0:
		accept.lo = 0x90 // reject overlong 4-byte forms
	case 0xF4:
		accept.hi = 0x8F // reject codepoints above U+10FFFF
	}

	leadMask := byte(0x7F >> uint(need))
	r = rune(c0 & leadMask)
	size = 1
	for size < need {
		if size >= len(b) {
			return ReplacementRune, size
		}
		c := b[size]
		if c < accept.lo || c > accept.hi {
			return ReplacementRune, size
		}
		r = r<<6 | rune(c&0x3F)
		accept = acceptRange{0x80, 0xBF}
		size++
	}
	return r, size
}
