package relcand

import "strings"

// toTok normalizes a free-form string into a lowercased token.
func toTok(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// capTags returns out[:min(limit, len(out))] if limit>0; otherwise out.
func capTags(out []TagRef, limit int) []TagRef {
	if limit > 0 && limit < len(out) {
		return out[:limit]
	}

	return out
}

// incDecimal adds one to a string of ASCII digits without overflow.
// "9" -> "10", "199" -> "200".
func incDecimal(s string) string {
	b := []byte(s)
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] < '9' {
			b[i]++
			return string(b)
		}
		b[i] = '0'
	}

	return "1" + string(b)
}
