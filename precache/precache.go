package precache

import (
	"io/fs"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"
)

// Report splits the files of a build directory by whether any cacheable
// asset pattern selects them.
type Report struct {
	Matched   []string
	Unmatched []string
}

// Match returns the sorted slash-separated paths under dir selected by any
// of the patterns.
func Match(dir string, patterns []string) ([]string, error) {
	fsys := os.DirFS(dir)

	seen := make(map[string]bool)
	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return nil, errors.Errorf("invalid glob %q", pattern)
		}
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, errors.Wrapf(err, "matching %q", pattern)
		}
		for _, m := range matches {
			seen[m] = true
		}
	}

	out := make([]string, 0, len(seen))
	for m := range seen {
		out = append(out, m)
	}
	sort.Strings(out)
	return out, nil
}

// Coverage reports which built files the patterns leave out.
func Coverage(dir string, patterns []string) (*Report, error) {
	matched, err := Match(dir, patterns)
	if err != nil {
		return nil, err
	}

	selected := make(map[string]bool, len(matched))
	for _, m := range matched {
		selected[m] = true
	}

	report := &Report{Matched: matched}
	err = fs.WalkDir(os.DirFS(dir), ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && !selected[p] {
			report.Unmatched = append(report.Unmatched, p)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "walking %s", dir)
	}

	sort.Strings(report.Unmatched)
	return report, nil
}
