package dockerls

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
)

// WalkFunc is called for each regular file which is not excluded.
// path is relative to the walked root and uses "/" as separator.
type WalkFunc func(path string, info os.FileInfo) error

// Walk walks the file tree rooted at root and calls fn for each regular file
// which is not excluded by any rule.
//
// Directories are never passed to fn and are never matched themselves, their
// files are checked independently. Symbolic links are passed if they point to
// a regular file, but linked directories are not walked into.
//
// The files are walked in lexical order.
//
// Any error while walking aborts the walk and is returned, as well as any
// error returned by fn.
func (l *Lister) Walk(root string, fn WalkFunc) error {
	return afero.Walk(l.fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return errors.Wrapf(err, "walk %s", path)
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return errors.Wrapf(err, "walk %s", path)
		}

		if rel != "." && l.skipHidden && strings.HasPrefix(info.Name(), ".") {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if info.IsDir() {
			return nil
		}

		if info.Mode()&os.ModeSymlink != 0 {
			target, err := l.fs.Stat(path)
			if err != nil {
				// Dangling link.
				return nil
			}
			info = target
		}

		if !info.Mode().IsRegular() {
			return nil
		}

		// The root itself is a file.
		if rel == "." {
			rel = info.Name()
		}

		rel = normalize(rel)
		if res := l.MatchBecause(rel); res.Found {
			l.logger.Debug("excluded", "path", rel, "pattern", res.Pattern, "line", res.Line)
			return nil
		}

		return fn(rel, info)
	})
}

// List returns all regular files below root which are not excluded, in walk order.
func (l *Lister) List(root string) ([]string, error) {
	files := make([]string, 0)
	err := l.Walk(root, func(path string, _ os.FileInfo) error {
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// Format joins the paths with a single space.
func Format(paths []string) string {
	return strings.Join(paths, " ")
}

func normalize(path string) string {
	return strings.TrimPrefix(filepath.ToSlash(path), "./")
}
