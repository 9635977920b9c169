package spirits

import "strings"

// Strength scores how specific a pattern is.
//
// Every character counts 1. A '*' costs 1, so it contributes nothing. A '.'
// costs 0.5. A backslash costs 1 and hides the character it escapes from
// scoring, so an escaped pair counts once as a literal. A trailing '?' costs
// 1.5 in total; a '?' anywhere else scores like a literal.
//
// The score may be fractional and is only meaningful relative to other
// patterns.
func Strength(text string) float64 {
	runes := []rune(text)
	strength := float64(len(runes))

	for i := 0; i < len(runes); i++ {
		switch runes[i] {
		case '*':
			strength--
		case '.':
			strength -= 0.5
		case '?':
			if i == len(runes)-1 {
				strength -= 0.5
			}
		case '\\':
			strength--
			i++
		}
	}

	if strings.HasSuffix(text, "?") {
		strength--
	}

	return strength
}
