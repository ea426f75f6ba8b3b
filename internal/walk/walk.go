// Package walk computes the ordered union of relative file paths that
// appear under either of two directory roots being compared.
package walk

import (
	"os"
	"path/filepath"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/pkg/errors"
)

// DiffPaths returns the lexicographically ordered set of paths,
// relative to their respective root, of every regular file or symlink
// found under left or right. A path present under both roots appears
// once.
func DiffPaths(left, right string) ([]string, error) {
	leftPaths, err := walkOne(left)
	if err != nil {
		return nil, err
	}
	rightPaths, err := walkOne(right)
	if err != nil {
		return nil, err
	}

	union := treeset.NewWithStringComparator()
	for _, p := range leftPaths {
		union.Add(p)
	}
	for _, p := range rightPaths {
		union.Add(p)
	}
	paths := make([]string, 0, union.Size())
	it := union.Iterator()
	for it.Next() {
		paths = append(paths, it.Value().(string))
	}
	return paths, nil
}

func walkOne(root string) ([]string, error) {
	if _, err := os.Stat(root); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "statting %s", root)
	}

	var paths []string
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return errors.Wrapf(err, "walking %s", path)
		}
		if info.Mode().IsRegular() || info.Mode()&os.ModeSymlink != 0 {
			rel, err := filepath.Rel(root, path)
			if err != nil {
				return errors.Wrapf(err, "computing %s relative to %s", path, root)
			}
			paths = append(paths, rel)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}
