package dockerls

import (
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrInvalidPattern is returned (wrapped) when a line of an ignore file is not
// a valid regular expression.
var ErrInvalidPattern = errors.New("invalid pattern")

type Rule struct {
	// Regexp is searched anywhere in the path. It is never anchored implicitly.
	Regexp *regexp.Regexp

	// Pattern is the original line of the source file.
	Pattern string

	// Line is the 1-based line in the ignore file, or 0 if the rule
	// was not loaded from a file.
	Line int
}

func (r Rule) MatchPath(path string) Result {
	return Result{
		Found: r.Regexp != nil && r.Regexp.MatchString(path),
		Rule:  r,
	}
}

// Compile the pattern into a Rule.
// skip means that this pattern doesn't contain any rule (e.g. just a comment or empty line).
func Compile(pattern string) (skip bool, rule Rule, err error) {
	// Empty lines are separators.
	if len(pattern) == 0 {
		return true, Rule{}, nil
	}

	// Lines starting with # are comments.
	if pattern[0] == '#' {
		return true, Rule{}, nil
	}

	reg, err := regexp.Compile(pattern)
	if err != nil {
		return false, Rule{}, errors.Mark(errors.Wrapf(err, "compile %q", pattern), ErrInvalidPattern)
	}

	return false, Rule{
		Regexp:  reg,
		Pattern: pattern,
	}, nil
}

// CompileAll rules in the given data line by line.
func CompileAll(data []byte) ([]Rule, error) {
	rules := make([]Rule, 0)
	lines := strings.Split(string(data), "\n")
	for i, line := range lines {
		// Remove \r on windows.
		line = strings.TrimSuffix(line, "\r")

		skip, rule, err := Compile(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", i+1)
		}

		if !skip {
			rule.Line = i + 1
			rules = append(rules, rule)
		}
	}
	return rules, nil
}

// MustCompileAll does the same as CompileAll but panics on error.
func MustCompileAll(data []byte) []Rule {
	rules, err := CompileAll(data)
	if err != nil {
		panic(err)
	}

	return rules
}
