//go:build amd64

package scanner

import "golang.org/x/sys/cpu"

// wideLanes gates the unrolled newline path; probed once at startup.
var wideLanes = cpu.X86.HasAVX2
