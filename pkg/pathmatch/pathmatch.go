// Package pathmatch matches paths the way find -path does.
//
// Semantics follow fnmatch(3) without FNM_PATHNAME: * and ? cross directory
// separators, [...] classes match one character (also including /), and \
// escapes the next character. Go's filepath.Match differs here, since its *
// stops at a slash.
package pathmatch

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
)

// Match reports whether path matches pattern under find -path semantics.
func Match(pattern, path string) (bool, error) {
	re, err := compiled(pattern)
	if err != nil {
		return false, err
	}

	return re.MatchString(path), nil
}

// Matcher holds a set of pre-compiled patterns for matching many paths.
type Matcher struct {
	res []*regexp.Regexp
}

// NewMatcher compiles patterns into a Matcher. An empty pattern set yields a
// matcher that matches nothing.
func NewMatcher(patterns []string) (*Matcher, error) {
	res := make([]*regexp.Regexp, 0, len(patterns))

	for _, pattern := range patterns {
		re, err := compiled(pattern)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", pattern, err)
		}

		res = append(res, re)
	}

	return &Matcher{res: res}, nil
}

// MatchAny reports whether path matches at least one of the patterns.
func (m *Matcher) MatchAny(path string) bool {
	for _, re := range m.res {
		if re.MatchString(path) {
			return true
		}
	}

	return false
}

// Identical patterns recur on every walked file, so compiled regexps are
// cached for the process lifetime.
var regexpCache sync.Map //nolint:gochecknoglobals

func compiled(pattern string) (*regexp.Regexp, error) {
	if hit, ok := regexpCache.Load(pattern); ok {
		return hit.(*regexp.Regexp), nil //nolint:errcheck,forcetypeassert // only regexps are stored
	}

	expr, err := translate(pattern)
	if err != nil {
		return nil, err
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("compiling pattern %q: %w", pattern, err)
	}

	regexpCache.Store(pattern, re)

	return re, nil
}

// translate rewrites a glob pattern as an anchored regular expression.
func translate(pattern string) (string, error) {
	var expr strings.Builder

	expr.WriteByte('^')

	for i := 0; i < len(pattern); {
		c := pattern[i]

		switch c {
		case '*':
			expr.WriteString(".*")
			i++
		case '?':
			expr.WriteByte('.')
			i++
		case '[':
			end, err := classEnd(pattern, i)
			if err != nil {
				return "", err
			}

			class := pattern[i : end+1]
			// fnmatch negates with !, regexp with ^.
			if len(class) > 2 && class[1] == '!' {
				class = "[^" + class[2:]
			}

			expr.WriteString(class)

			i = end + 1
		case '\\':
			if i+1 >= len(pattern) {
				return "", fmt.Errorf("trailing backslash in pattern %q", pattern)
			}

			expr.WriteString(regexp.QuoteMeta(string(pattern[i+1])))

			i += 2
		default:
			expr.WriteString(regexp.QuoteMeta(string(c)))
			i++
		}
	}

	expr.WriteByte('$')

	return expr.String(), nil
}

// classEnd returns the index of the ] closing the character class that opens
// at start. A ! right after [ and a ] in the first position are part of the
// class, not its end.
func classEnd(pattern string, start int) (int, error) {
	i := start + 1

	if i < len(pattern) && pattern[i] == '!' {
		i++
	}

	if i < len(pattern) && pattern[i] == ']' {
		i++
	}

	for ; i < len(pattern); i++ {
		if pattern[i] == ']' {
			return i, nil
		}
	}

	return 0, fmt.Errorf("unclosed character class in pattern %q", pattern)
}
