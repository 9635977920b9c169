// Package spirits provides lightweight glob-style pattern matching over
// strings, plus helpers to rank patterns by how specific they are and to
// filter or group candidate strings by the patterns they satisfy.
//
// A Pattern is built once from its source text and is immutable afterwards.
// Its strength (a specificity score) is computed at construction time and is
// only used to rank patterns against each other.
//
// # Quick Start
//
//	p := spirits.New("ab*cd")
//
//	fmt.Println(p.Match("abxxcd"))                      // true
//	fmt.Println(p.FindMatches("abbcd", "acbd", "abcd")) // [abbcd abcd]
//
//	best, ok := spirits.BestMatch("ab", "*", "ab?", "ab.")
//	// best == "ab?", ok == true
//
//	groups := spirits.Map([]string{"*", "a."}, []string{"a", "ab", "abc"})
//	// groups["*"] == [a ab abc], groups["a."] == [ab]
//
// Every operation accepts either raw strings or *Pattern values (see Like).
// Raw strings are compiled once per call; pass a *Pattern to reuse one.
//
// # Pattern Syntax
//
// Exactly three metacharacters and one escape are recognized:
//
//   - "*" matches any run of characters, including none
//   - "." matches exactly one character
//   - "?" matches exactly one character, and may be absent when it is the
//     last character of the pattern
//   - "\x" matches the character x literally
//
// Everything else matches itself. Characters are Unicode code points. An empty
// candidate never matches, not even "*".
//
// # Concurrency
//
// Patterns and Sets are immutable and safe for concurrent use. For very large
// candidate lists FindMatchesParallel and MapParallel split the work across
// runtime.NumCPU() goroutines and merge results in input order.
package spirits
