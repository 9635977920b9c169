// Package output renders command results as text, JSON, YAML or TOML.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/armn3t/go-spirits"
)

// MatchResult is the outcome for one candidate.
type MatchResult struct {
	Candidate string `json:"candidate" yaml:"candidate" toml:"candidate"`
	Matched   bool   `json:"matched" yaml:"matched" toml:"matched"`
}

// MatchReport is the result of the match command.
type MatchReport struct {
	Pattern  string        `json:"pattern" yaml:"pattern" toml:"pattern"`
	AllMatch bool          `json:"all_match" yaml:"all_match" toml:"all_match"`
	Results  []MatchResult `json:"results" yaml:"results" toml:"results"`
}

// FindReport is the result of the find command.
type FindReport struct {
	Pattern string   `json:"pattern" yaml:"pattern" toml:"pattern"`
	Matches []string `json:"matches" yaml:"matches" toml:"matches"`
}

// BestReport is the result of the best command.
type BestReport struct {
	Target   string  `json:"target" yaml:"target" toml:"target"`
	Matched  bool    `json:"matched" yaml:"matched" toml:"matched"`
	Best     string  `json:"best,omitempty" yaml:"best,omitempty" toml:"best,omitempty"`
	// Strength is set only when Matched is true.
	Strength *float64 `json:"strength,omitempty" yaml:"strength,omitempty" toml:"strength,omitempty"`
}

// GroupReport is the result of the map command.
type GroupReport struct {
	Groups []spirits.Group `json:"groups" yaml:"groups" toml:"groups"`
}

// StrengthEntry is one pattern with its score.
type StrengthEntry struct {
	Pattern  string  `json:"pattern" yaml:"pattern" toml:"pattern"`
	Strength float64 `json:"strength" yaml:"strength" toml:"strength"`
}

// StrengthReport is the result of the strength command.
type StrengthReport struct {
	Patterns []StrengthEntry `json:"patterns" yaml:"patterns" toml:"patterns"`
}

// Printer writes reports in one format.
type Printer struct {
	w      io.Writer
	format string
}

// New returns a Printer for format, one of text, json, yaml or toml.
func New(w io.Writer, format string) (*Printer, error) {
	switch format {
	case "text", "json", "yaml", "toml":
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
	return &Printer{w: w, format: format}, nil
}

// Match prints a MatchReport. Text output lists each candidate with its
// result.
func (p *Printer) Match(r MatchReport) error {
	if p.format != "text" {
		return p.encode(r)
	}
	for _, res := range r.Results {
		mark := "no "
		if res.Matched {
			mark = "yes"
		}
		if _, err := fmt.Fprintf(p.w, "%s  %s\n", mark, res.Candidate); err != nil {
			return err
		}
	}
	return nil
}

// Find prints a FindReport. Text output is one match per line.
func (p *Printer) Find(r FindReport) error {
	if p.format != "text" {
		return p.encode(r)
	}
	return p.lines(r.Matches)
}

// Best prints a BestReport. Text output is the winning pattern, or nothing
// when there is none.
func (p *Printer) Best(r BestReport) error {
	if p.format != "text" {
		return p.encode(r)
	}
	if !r.Matched {
		return nil
	}
	_, err := fmt.Fprintln(p.w, r.Best)
	return err
}

// Groups prints a GroupReport. Text output is the pattern followed by its
// indented matches.
func (p *Printer) Groups(r GroupReport) error {
	if p.format != "text" {
		return p.encode(r)
	}
	for _, g := range r.Groups {
		if _, err := fmt.Fprintf(p.w, "%s (%d)\n", g.Pattern, len(g.Matches)); err != nil {
			return err
		}
		for _, m := range g.Matches {
			if _, err := fmt.Fprintf(p.w, "  %s\n", m); err != nil {
				return err
			}
		}
	}
	return nil
}

// Strengths prints a StrengthReport. Text output is aligned two columns.
func (p *Printer) Strengths(r StrengthReport) error {
	if p.format != "text" {
		return p.encode(r)
	}
	width := 0
	for _, e := range r.Patterns {
		width = max(width, len(e.Pattern))
	}
	for _, e := range r.Patterns {
		pad := strings.Repeat(" ", width-len(e.Pattern))
		score := strconv.FormatFloat(e.Strength, 'f', -1, 64)
		if _, err := fmt.Fprintf(p.w, "%s%s  %s\n", e.Pattern, pad, score); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) lines(items []string) error {
	for _, item := range items {
		if _, err := fmt.Fprintln(p.w, item); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) encode(v any) error {
	switch p.format {
	case "json":
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(p.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	case "toml":
		if err := toml.NewEncoder(p.w).Encode(v); err != nil {
			return fmt.Errorf("failed to encode toml: %w", err)
		}
		return nil
	}
	return fmt.Errorf("unknown output format %q", p.format)
}
