package spirits

import (
	"github.com/rs/zerolog"
)

// AllMatch reports whether every candidate matches pattern. With no
// candidates it reports true.
func AllMatch[P Like](pattern P, candidates ...string) bool {
	return From(pattern).AllMatch(candidates...)
}

// FindMatches returns the candidates that match pattern, in input order.
func FindMatches[P Like](pattern P, candidates ...string) []string {
	return From(pattern).FindMatches(candidates...)
}

// BestMatch returns the most specific of patterns that matches target, along
// with true. The value returned is the one that was passed in, not a
// normalized copy.
//
// Patterns are tried in order. The first matching pattern becomes the best
// so far, and a later one replaces it only if it also matches and its
// strength is strictly greater; ties therefore go to the earliest pattern.
// When nothing matches, BestMatch returns the zero value and false.
func BestMatch[P Like](target string, patterns ...P) (P, bool) {
	var (
		best     P
		bestPat  *Pattern
		bestSeen bool
	)
	for _, raw := range patterns {
		p := From(raw)
		if bestSeen && p.strength <= bestPat.strength {
			continue
		}
		if p.Match(target) {
			best, bestPat, bestSeen = raw, p, true
		}
	}
	return best, bestSeen
}

// Map groups candidates by pattern. The result has one key per pattern,
// the pattern's source text, and its value lists the matching candidates in
// input order. Patterns that match nothing map to an empty slice.
func Map[P Like](patterns []P, candidates []string) map[string][]string {
	out := make(map[string][]string, len(patterns))
	for _, raw := range patterns {
		p := From(raw)
		out[p.text] = p.FindMatches(candidates...)
	}
	return out
}

// Group is one pattern together with the candidates it matched.
type Group struct {
	Pattern string   `json:"pattern" yaml:"pattern" toml:"pattern"`
	Matches []string `json:"matches" yaml:"matches" toml:"matches"`
}

// Set is an ordered, immutable collection of patterns. It is safe for
// concurrent use.
type Set struct {
	patterns []*Pattern
	logger   zerolog.Logger
}

// NewSet compiles every pattern text with the given options. It returns the
// first validation error encountered.
func NewSet(texts []string, opts ...Option) (*Set, error) {
	o := applyOptions(opts)
	s := &Set{
		patterns: make([]*Pattern, 0, len(texts)),
		logger:   o.logger,
	}
	for _, text := range texts {
		p, err := o.compile(text)
		if err != nil {
			return nil, err
		}
		s.patterns = append(s.patterns, p)
	}
	o.logger.Debug().Int("patterns", len(s.patterns)).Msg("Built pattern set")
	return s, nil
}

// SetOf builds a Set from pattern-like values without validation.
func SetOf[P Like](patterns ...P) *Set {
	s := &Set{
		patterns: make([]*Pattern, 0, len(patterns)),
		logger:   zerolog.Nop(),
	}
	for _, raw := range patterns {
		s.patterns = append(s.patterns, From(raw))
	}
	return s
}

// Len returns the number of patterns in the set.
func (s *Set) Len() int {
	return len(s.patterns)
}

// Patterns returns the set's patterns in order.
func (s *Set) Patterns() []*Pattern {
	out := make([]*Pattern, len(s.patterns))
	copy(out, s.patterns)
	return out
}

// Best is BestMatch over the set.
func (s *Set) Best(target string) (*Pattern, bool) {
	best, ok := BestMatch(target, s.patterns...)
	s.logger.Debug().
		Str("target", target).
		Bool("matched", ok).
		Func(func(e *zerolog.Event) {
			if ok {
				e.Str("best", best.text).Float64("strength", best.strength)
			}
		}).
		Msg("Selected best pattern")
	return best, ok
}

// Matching returns every pattern in the set that matches candidate, in set
// order.
func (s *Set) Matching(candidate string) []*Pattern {
	var out []*Pattern
	for _, p := range s.patterns {
		if p.Match(candidate) {
			out = append(out, p)
		}
	}
	return out
}

// Map is Map over the set.
func (s *Set) Map(candidates []string) map[string][]string {
	return Map(s.patterns, candidates)
}

// Groups is the ordered form of Map: one Group per pattern, in set order.
// Duplicate pattern texts produce duplicate groups.
func (s *Set) Groups(candidates []string) []Group {
	groups := make([]Group, 0, len(s.patterns))
	for _, p := range s.patterns {
		groups = append(groups, Group{Pattern: p.text, Matches: p.FindMatches(candidates...)})
	}
	s.logger.Debug().
		Int("patterns", len(s.patterns)).
		Int("candidates", len(candidates)).
		Msg("Grouped candidates")
	return groups
}
