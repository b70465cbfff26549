package assist

import (
	"strings"
	"unicode"
)

// Merge folds an accepted suggestion into the field's current value. A
// suggestion already contained in the value is a no-op; otherwise it is
// appended with a single separating space, unless the value is empty or
// already ends in whitespace.
func Merge(current, suggestion string) string {
	if suggestion == "" {
		return current
	}
	if strings.Contains(current, suggestion) {
		return current
	}
	if current == "" {
		return suggestion
	}
	runes := []rune(current)
	if unicode.IsSpace(runes[len(runes)-1]) {
		return current + suggestion
	}
	return current + " " + suggestion
}
