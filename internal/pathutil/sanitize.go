package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// OutputPath cleans path into an absolute path that is safe to write a
// rendering to. It refuses symlinks, directories, and any path that resolves
// to one of inputs; an input of "-" (stdin) is ignored. The file itself need
// not exist yet.
func OutputPath(path string, inputs ...string) (string, error) {
	abs, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("pathutil: cannot resolve absolute path: %w", err)
	}

	info, err := os.Lstat(abs)
	switch {
	case err == nil:
		if info.Mode()&os.ModeSymlink != 0 {
			return "", fmt.Errorf("pathutil: refusing to write to symlink: %s", abs)
		}
		if info.IsDir() {
			return "", fmt.Errorf("pathutil: output path is a directory: %s", abs)
		}
	case !os.IsNotExist(err):
		return "", fmt.Errorf("pathutil: cannot stat path: %w", err)
	}

	for _, in := range inputs {
		if in == "-" {
			continue
		}
		absIn, err := filepath.Abs(in)
		if err != nil {
			return "", fmt.Errorf("pathutil: invalid input path %s: %w", in, err)
		}
		if absIn == abs {
			return "", fmt.Errorf("pathutil: output file %s would overwrite input file %s", path, in)
		}
	}
	return abs, nil
}
