package encoding

import (
	"os"
	"strings"
	"sync"
)

// WordMode selects which whitespace semantics drive word splitting.
// The C-locale byte mode is not a locale outcome; callers opt into it
// explicitly.
type WordMode uint8

const (
	WordModeASCII WordMode = iota
	WordModeUnicode
)

func (m WordMode) String() string {
	if m == WordModeUnicode {
		return "unicode"
	}
	return "ascii"
}

// localeVars is the resolution hierarchy, strongest first: the override,
// the ctype category, then the general locale.
var localeVars = [3]string{"LC_ALL", "LC_CTYPE", "LANG"}

var cachedWordMode = sync.OnceValue(func() WordMode {
	return resolveWordMode(os.LookupEnv)
})

// ResolveWordMode resolves the process word mode from the locale
// environment. The result is computed once and cached; the underlying
// resolution is idempotent, so redundant recomputation (including the
// direct calls tests make with an injected lookup) always agrees.
func ResolveWordMode() WordMode {
	return cachedWordMode()
}

func resolveWordMode(lookup func(string) (string, bool)) WordMode {
	for _, name := range localeVars {
		v, ok := lookup(name)
		if !ok || v == "" {
			continue
		}
		return classifyLocale(v)
	}
	return WordModeASCII
}

func classifyLocale(v string) WordMode {
	if v == "C" || v == "POSIX" {
		return WordModeASCII
	}
	lower := strings.ToLower(v)
	if strings.Contains(lower, "utf-8") || strings.Contains(lower, "utf8") {
		return WordModeUnicode
	}
	return WordModeASCII
}
