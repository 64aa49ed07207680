package responses

import "strings"

// Find returns the response of the first keyword, in insertion order, that
// appears anywhere in text. Matching is case-sensitive. The earliest inserted
// keyword wins even when a later one is a longer match.
//
// Empty text never matches.
func Find(s Store, text string) (string, bool) {
	if text == "" {
		return "", false
	}
	for keyword, response := range s.All() {
		if strings.Contains(text, keyword) {
			return response, true
		}
	}
	return "", false
}
