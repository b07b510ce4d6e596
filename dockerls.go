// Package dockerls lists the files of a directory tree which are not excluded
// by an ignore file such as .dockerignore.
//
//  PATTERN FORMAT
//
//    * Each line is a regular expression (RE2 syntax) which is searched anywhere in
//      the path. It is not anchored, so "log" excludes "a/catalog.txt" as well as "b.log".
//      Use "^" and "$" to anchor it.
//
//    * The path a pattern is checked against is relative to the walked root, uses "/"
//      as separator and never starts with "./". For example "sub/c.txt".
//
//    * A blank line matches no files, so it can serve as a separator for readability.
//
//    * A line starting with # serves as a comment.
//
//    * Only regular files are checked. Directories are never listed and never excluded
//      as a whole: each file inside is checked on its own.
package dockerls

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
)

// DefaultIgnoreFileName is the ignore file read by the command if nothing else is given.
const DefaultIgnoreFileName = ".dockerignore"

type Option func(l *Lister)

type Lister struct {
	fs         afero.Fs
	logger     *log.Logger
	rules      []Rule
	skipHidden bool
}

// Apply options to the Lister.
// This is also possible when instantiating with New.
func (l *Lister) Apply(options ...Option) {
	for _, o := range options {
		o(l)
	}
}

// WithFS is an option which injects a filesystem.
// If this is not passed, the os filesystem is used.
func WithFS(f afero.Fs) Option {
	return func(l *Lister) {
		l.fs = f
	}
}

// WithLogger sets the logger excluded paths are reported to at debug level.
func WithLogger(logger *log.Logger) Option {
	return func(l *Lister) {
		l.logger = logger
	}
}

// WithRules can be used to add rules without an extra call to an Add method.
// For example:
//  l := dockerls.New(dockerls.WithRules(dockerls.MustCompileAll([]byte(`\.log$`))...))
func WithRules(rules ...Rule) Option {
	return func(l *Lister) {
		l.AddRules(rules...)
	}
}

// WithoutHidden skips every file and folder whose name starts with a dot,
// the way shell globbing does.
func WithoutHidden() Option {
	return func(l *Lister) {
		l.skipHidden = true
	}
}

// New creates a Lister without any rules.
// You can pass additional options if needed.
func New(options ...Option) *Lister {
	l := &Lister{}

	l.Apply(options...)

	if l.fs == nil {
		l.fs = afero.NewOsFs()
	}
	if l.logger == nil {
		l.logger = log.New(io.Discard)
	}

	return l
}

// Rules returns the loaded rules in the order they are checked.
func (l *Lister) Rules() []Rule {
	return l.rules
}

// AddRules to the Lister which are already compiled.
func (l *Lister) AddRules(rules ...Rule) {
	l.rules = append(l.rules, rules...)
}

// AddPatterns compiles the given lines and adds them.
// Comments and empty lines are skipped the same way as in an ignore file.
func (l *Lister) AddPatterns(patterns ...string) error {
	for _, p := range patterns {
		skip, rule, err := Compile(p)
		if err != nil {
			return err
		}
		if !skip {
			l.rules = append(l.rules, rule)
		}
	}
	return nil
}

// AddFile reads the given file from the Lister's filesystem and loads its
// content as an ignore file.
//
// The file has to exist.
func (l *Lister) AddFile(path string) error {
	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return errors.Wrapf(err, "read ignore file %s", path)
	}

	rules, err := CompileAll(data)
	if err != nil {
		return errors.Wrapf(err, "parse ignore file %s", path)
	}

	l.rules = append(l.rules, rules...)
	l.logger.Debug("loaded ignore file", "path", path, "rules", len(rules))
	return nil
}

// Match reports whether any rule excludes the path.
func (l *Lister) Match(path string) bool {
	return l.MatchBecause(path).Found
}

// MatchBecause checks the rules in order and returns the result of the first
// one which matches. If none matches, the zero Result is returned.
func (l *Lister) MatchBecause(path string) Result {
	for _, rule := range l.rules {
		if res := rule.MatchPath(path); res.Found {
			return res
		}
	}
	return Result{}
}
