// Package strutil holds small string helpers shared by the services.
package strutil

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var separatorRegexp = regexp.MustCompile(`[_\-]+`)

// CamelCase converts snake_case or kebab-case to camelCase.
// A letter is upper-cased when it follows any non-letter, so digits and
// apostrophes also start a new word: "foo1bar" becomes "foo1Bar" and
// "HTTP_server" becomes "httpServer".
func CamelCase(s string) string {
	if s == "" {
		return ""
	}

	// Casers are stateful and must not be shared between goroutines.
	title := cases.Title(language.Und)
	s = strings.ReplaceAll(titleLetterRuns(title, separatorRegexp.ReplaceAllString(s, " ")), " ", "")
	if s == "" {
		return ""
	}

	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[size:]
}

// titleLetterRuns title-cases every maximal run of letters in s and copies
// everything else unchanged.
func titleLetterRuns(title cases.Caser, s string) string {
	var b strings.Builder
	b.Grow(len(s))

	start := -1
	for i, r := range s {
		switch {
		case unicode.IsLetter(r) && start < 0:
			start = i
		case !unicode.IsLetter(r):
			if start >= 0 {
				b.WriteString(title.String(s[start:i]))
				start = -1
			}
			b.WriteRune(r)
		}
	}
	if start >= 0 {
		b.WriteString(title.String(s[start:]))
	}
	return b.String()
}

// SnakeCase converts CamelCase or camelCase to snake_case by inserting '_'
// before every ASCII uppercase letter except a leading one.
// Acronyms are split per letter: "HTTPServer" becomes "h_t_t_p_server".
func SnakeCase(s string) string {
	var b strings.Builder
	b.Grow(len(s) + len(s)/2)

	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte('_')
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}
