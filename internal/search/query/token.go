package query

import "regexp"

type token struct {
	str     string
	exclude bool // the token was prefixed with "-"
	pattern *regexp.Regexp
}

func newToken(str string, exclude bool) token {
	return token{
		str:     str,
		exclude: exclude,
		pattern: regexp.MustCompile("(?i)" + regexp.QuoteMeta(str)),
	}
}

// splitFields splits a query string on whitespace, keeping "double-quoted phrases" together. The
// quotes are removed. An unterminated quote extends to the end of the input.
func splitFields(s string) []string {
	var (
		fields []string
		cur    []rune
		quoted bool
	)
	flush := func() {
		if len(cur) > 0 {
			fields = append(fields, string(cur))
			cur = cur[:0]
		}
	}
	for _, r := range s {
		switch {
		case r == '"':
			if quoted {
				flush()
			}
			quoted = !quoted
		case !quoted && (r == ' ' || r == '\t' || r == '\n' || r == '\r'):
			flush()
		default:
			cur = append(cur, r)
		}
	}
	flush()
	return fields
}
