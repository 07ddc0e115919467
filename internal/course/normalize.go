// Package course canonicalizes free-text engineering program names.
//
// Cutoff tables published across different years spell the same program in
// wildly different ways ("CS COMPUTERS", "Computer Science And Engg",
// "COMPUTER SCIENCE AND ENGINEERING"). This package maps every spelling to
// one canonical display name and to a comparison key that is stable under
// case, whitespace and punctuation differences. It never returns errors:
// unrecognized names degrade to a title-cased approximation.
package course

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	codePrefixRe = regexp.MustCompile(`^([A-Z]{2})(?:\s|$)`)
	keyStripRe   = regexp.MustCompile(`[^a-z0-9]+`)
)

// Normalize maps a raw program name to its canonical display name. The
// empty string is returned unchanged. Unrecognized names fall back to
// word-by-word title casing, which is a display approximation only, not a
// canonical form.
func Normalize(raw string) string {
	if raw == "" {
		return raw
	}
	clean := strings.TrimSpace(whitespaceRe.ReplaceAllString(raw, " "))
	if name, ok := matchRules(clean); ok {
		return name
	}
	// Rows are often prefixed with a department code ("CS COMPUTERS");
	// retry without it before giving up.
	if rest, ok := stripCodePrefix(clean); ok {
		if name, ok := matchRules(rest); ok {
			return name
		}
	}
	return titleCase(clean)
}

func matchRules(s string) (string, bool) {
	for _, r := range courseRules {
		if r.pattern.MatchString(s) {
			return r.canonical, true
		}
	}
	return "", false
}

// Code extracts the 2-letter department code from a branch code or course
// name ("CS COMPUTERS" and "CS" both yield "CS"). It returns the empty
// string when no code is present.
func Code(s string) string {
	m := codePrefixRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return ""
	}
	return m[1]
}

func stripCodePrefix(s string) (string, bool) {
	m := codePrefixRe.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	rest := strings.TrimSpace(s[len(m[1]):])
	if rest == "" {
		return "", false
	}
	return rest, true
}

var connectors = map[string]bool{
	"and": true,
	"of":  true,
	"in":  true,
	"the": true,
	"&":   true,
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		lower := strings.ToLower(w)
		if i > 0 && connectors[lower] {
			words[i] = lower
			continue
		}
		words[i] = capitalize(lower)
	}
	return strings.Join(words, " ")
}

func capitalize(w string) string {
	r := []rune(w)
	if len(r) == 0 {
		return w
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// CanonicalKey reduces a raw program name to the identifier used for
// equality: the normalized name lowercased with everything outside [a-z0-9]
// stripped. Whitespace and punctuation differences never change the key.
func CanonicalKey(raw string) string {
	return keyStripRe.ReplaceAllString(strings.ToLower(Normalize(raw)), "")
}

// Same reports whether two raw program names refer to the same program.
func Same(a, b string) bool {
	return CanonicalKey(a) == CanonicalKey(b)
}

// Unique de-duplicates raw program names by canonical key, keeping the
// canonical display name of the first occurrence of each key. The result is
// sorted alphabetically.
func Unique(names []string) []string {
	seen := make(map[string]bool, len(names))
	var out []string
	for _, n := range names {
		k := CanonicalKey(n)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, Normalize(n))
	}
	sort.Strings(out)
	return out
}
