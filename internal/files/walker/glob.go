package walker

import (
	"regexp"
	"strings"
)

// compileGlob translates a simplified wildcard pattern into a regexp:
// `*` becomes any run of characters, `?` exactly one character, and every
// other rune (notably `.`) is escaped literally.
//
// The resulting pattern is deliberately unanchored, so it matches anywhere
// within a candidate path, including directory components. "*.log" excludes
// every path that contains a ".log" segment, not just base names.
func compileGlob(pattern string) *regexp.Regexp {
	var b strings.Builder
	for _, r := range pattern {
		switch r {
		case '*':
			b.WriteString(".*")
		case '?':
			b.WriteString(".")
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	// Every non-wildcard rune is quoted, so the pattern always compiles.
	return regexp.MustCompile(b.String())
}
