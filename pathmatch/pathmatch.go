// Package pathmatch provides the pattern predicate used for include/exclude
// path rules.
package pathmatch

import (
	"fmt"
	"regexp"
	"strings"
)

// Pattern matches candidate path strings.
type Pattern interface {
	// Match reports whether the candidate satisfies the pattern.
	Match(candidate string) bool
}

type literalPattern string

func (p literalPattern) Match(candidate string) bool {
	return strings.Contains(candidate, string(p))
}

type regexpPattern struct {
	re *regexp.Regexp
}

func (p regexpPattern) Match(candidate string) bool {
	return p.re.MatchString(candidate)
}

// Literal returns a pattern matching any candidate that contains s.
func Literal(s string) Pattern {
	return literalPattern(s)
}

// Regexp returns a pattern matching candidates against a compiled expression.
func Regexp(re *regexp.Regexp) Pattern {
	return regexpPattern{re: re}
}

// Matches reports whether the candidate satisfies at least one pattern.
// An empty or nil pattern set never matches.
func Matches(candidate string, patterns []Pattern) bool {
	for _, p := range patterns {
		if p != nil && p.Match(candidate) {
			return true
		}
	}
	return false
}

// Compile turns textual rules into regexp patterns.
func Compile(exprs []string) ([]Pattern, error) {
	if len(exprs) == 0 {
		return nil, nil
	}

	patterns := make([]Pattern, 0, len(exprs))
	for _, expr := range exprs {
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("compile pattern %q: %w", expr, err)
		}
		patterns = append(patterns, Regexp(re))
	}

	return patterns, nil
}
