//go:build !amd64

package scanner

// wideLanes is false where no CPU feature probe is wired; the 8-byte SWAR
// path is the primary implementation on these platforms.
var wideLanes = false
