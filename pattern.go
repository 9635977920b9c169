package spirits

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Like is the set of values accepted wherever a pattern is expected: raw
// pattern text or an already constructed *Pattern.
type Like interface {
	string | *Pattern
}

// Pattern is a glob expression together with its precomputed strength.
// The zero value is not usable; construct Patterns with New or Compile.
//
// A Pattern is immutable and safe for concurrent use.
type Pattern struct {
	text     string
	runes    []rune
	strength float64
}

// New builds a Pattern from its source text. It never fails: every string,
// including the empty string, is a legal pattern.
func New(text string) *Pattern {
	return &Pattern{
		text:     text,
		runes:    []rune(text),
		strength: Strength(text),
	}
}

// Compile is like New but runs the configured Validator first and reports the
// compiled pattern on the configured logger.
func Compile(text string, opts ...Option) (*Pattern, error) {
	o := applyOptions(opts)
	return o.compile(text)
}

// From converts a pattern-like value to a *Pattern. A *Pattern is returned
// unchanged; a string is compiled with New. From panics on a nil *Pattern.
func From[P Like](p P) *Pattern {
	switch v := any(p).(type) {
	case *Pattern:
		if v == nil {
			panic("spirits: nil *Pattern")
		}
		return v
	case string:
		return New(v)
	}
	panic(fmt.Sprintf("spirits: unsupported pattern type %T", p))
}

// String returns the source text the Pattern was built from.
func (p *Pattern) String() string {
	return p.text
}

// Text is an alias for String.
func (p *Pattern) Text() string {
	return p.text
}

// Strength reports how specific the pattern is. Higher is more specific.
func (p *Pattern) Strength() float64 {
	return p.strength
}

// Match reports whether candidate matches the pattern.
func (p *Pattern) Match(candidate string) bool {
	if candidate == "" {
		return false
	}
	buf := getRunes(candidate)
	ok := match(p.runes, *buf)
	putRunes(buf)
	return ok
}

// AllMatch reports whether every candidate matches the pattern. It stops at
// the first candidate that does not.
func (p *Pattern) AllMatch(candidates ...string) bool {
	for _, c := range candidates {
		if !p.Match(c) {
			return false
		}
	}
	return true
}

// FindMatches returns the candidates that match the pattern, in input order.
// Duplicates are kept.
func (p *Pattern) FindMatches(candidates ...string) []string {
	matches := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if p.Match(c) {
			matches = append(matches, c)
		}
	}
	return matches
}

// Option configures Compile and NewSet.
type Option func(*options)

type options struct {
	logger    zerolog.Logger
	validator Validator
}

// WithLogger sets the logger used to report compiled patterns and set
// operations. The default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithValidator sets a Validator that every pattern must pass before it is
// compiled.
func WithValidator(v Validator) Option {
	return func(o *options) {
		o.validator = v
	}
}

func applyOptions(opts []Option) *options {
	o := &options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *options) compile(text string) (*Pattern, error) {
	if o.validator != nil {
		if err := o.validator(text); err != nil {
			o.logger.Debug().Err(err).Str("pattern", text).Msg("Rejected pattern")
			return nil, err
		}
	}
	p := New(text)
	o.logger.Debug().
		Str("pattern", text).
		Float64("strength", p.strength).
		Msg("Compiled pattern")
	return p, nil
}
