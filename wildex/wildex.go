// Package wildex implements wildcard expressions, the string patterns used by
// queries to match names and other string properties.
//
// By default a wildcard expression is a case-insensitive wildcard pattern where
// '*' matches any sequence of characters and '?' matches any single character.
// All other characters match themselves. The pattern can start with an options
// prefix "**opts " that changes how the rest of it is interpreted:
//
//	t  plain text, no wildcard characters
//	c  case-sensitive
//	r  regular expression (RE2 syntax), case-insensitive
//	R  regular expression, case-sensitive
//	m  multiple parts separated by "||"; matches if any part matches
//	n  not; matches if the rest does not match
//
// For example "**tc Save*" matches only the exact text "Save*", and
// "**m OK||Yes" matches "ok" and "YES".
package wildex

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gobwas/glob"
)

const optionsPrefix = "**"

// Wildex is a compiled wildcard expression.
type Wildex struct {
	source string
	not    bool
	parts  []matcher
}

type matcher interface {
	match(s string) bool
}

// Parse compiles a wildcard expression.
func Parse(pattern string) (*Wildex, error) {
	w := &Wildex{source: pattern}
	text, opts, err := splitOptions(pattern)
	if err != nil {
		return nil, err
	}
	w.not = opts.not

	parts := []string{text}
	if opts.multi {
		parts = strings.Split(text, "||")
	}
	for _, part := range parts {
		m, err := opts.compile(part)
		if err != nil {
			return nil, err
		}
		w.parts = append(w.parts, m)
	}
	return w, nil
}

// MustParse is like Parse but panics if the pattern is invalid. It is meant for
// patterns that are constants.
func MustParse(pattern string) *Wildex {
	w, err := Parse(pattern)
	if err != nil {
		panic(fmt.Sprintf("wildex.MustParse(%q): %v", pattern, err))
	}
	return w
}

// Match returns true if s matches the expression.
func (w *Wildex) Match(s string) bool {
	matched := false
	for _, m := range w.parts {
		if m.match(s) {
			matched = true
			break
		}
	}
	return matched != w.not
}

// String returns the source pattern.
func (w *Wildex) String() string {
	return w.source
}

type options struct {
	text          bool
	caseSensitive bool
	regex         bool
	multi         bool
	not           bool
}

func splitOptions(pattern string) (string, options, error) {
	var opts options
	if !strings.HasPrefix(pattern, optionsPrefix) {
		return pattern, opts, nil
	}
	end := strings.IndexByte(pattern, ' ')
	if end < 0 {
		// "**" without options is a normal wildcard pattern
		return pattern, opts, nil
	}
	for _, c := range pattern[len(optionsPrefix):end] {
		switch c {
		case 't':
			opts.text = true
		case 'c':
			opts.caseSensitive = true
		case 'r':
			opts.regex = true
		case 'R':
			opts.regex = true
			opts.caseSensitive = true
		case 'm':
			opts.multi = true
		case 'n':
			opts.not = true
		default:
			return "", opts, fmt.Errorf("invalid wildcard expression options %q", pattern[:end])
		}
	}
	if opts.text && opts.regex {
		return "", opts, fmt.Errorf("invalid wildcard expression options %q: t and r are exclusive", pattern[:end])
	}
	return pattern[end+1:], opts, nil
}

func (opts options) compile(part string) (matcher, error) {
	switch {
	case opts.regex:
		expr := part
		if !opts.caseSensitive {
			expr = "(?i)" + expr
		}
		rx, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("invalid regular expression %q: %v", part, err)
		}
		return regexMatcher{rx}, nil
	case opts.text:
		return textMatcher{text: part, caseSensitive: opts.caseSensitive}, nil
	case !strings.ContainsAny(part, "*?"):
		return textMatcher{text: part, caseSensitive: opts.caseSensitive}, nil
	default:
		if !opts.caseSensitive {
			part = strings.ToLower(part)
		}
		g, err := glob.Compile(quoteGlob(part))
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %v", part, err)
		}
		return globMatcher{g: g, caseSensitive: opts.caseSensitive}, nil
	}
}

// quoteGlob escapes all glob metacharacters except '*' and '?'.
func quoteGlob(pattern string) string {
	var b strings.Builder
	for _, c := range pattern {
		switch c {
		case '*', '?':
			b.WriteRune(c)
		default:
			b.WriteString(glob.QuoteMeta(string(c)))
		}
	}
	return b.String()
}

type textMatcher struct {
	text          string
	caseSensitive bool
}

func (m textMatcher) match(s string) bool {
	if m.caseSensitive {
		return s == m.text
	}
	return strings.EqualFold(s, m.text)
}

type globMatcher struct {
	g             glob.Glob
	caseSensitive bool
}

func (m globMatcher) match(s string) bool {
	if !m.caseSensitive {
		s = strings.ToLower(s)
	}
	return m.g.Match(s)
}

type regexMatcher struct {
	rx *regexp.Regexp
}

func (m regexMatcher) match(s string) bool {
	return m.rx.MatchString(s)
}
