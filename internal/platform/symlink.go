package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// maxLinkDepth bounds symlink chain resolution so a link cycle cannot hang
// the caller.
const maxLinkDepth = 16

// ResolveSymlinks follows the symlink chain starting at path and returns the
// final target. Relative link targets are resolved against the directory
// containing the link, matching how the kernel resolves them. A path that is
// not a symlink is returned unchanged. Chains longer than maxLinkDepth are
// treated as cycles.
func ResolveSymlinks(path string) (string, error) {
	current := path
	for depth := 0; depth < maxLinkDepth; depth++ {
		info, err := os.Lstat(current)
		if err != nil {
			return "", err
		}
		if info.Mode()&os.ModeSymlink == 0 {
			return current, nil
		}

		target, err := os.Readlink(current)
		if err != nil {
			return "", fmt.Errorf("reading link %s: %w", current, err)
		}
		if !filepath.IsAbs(target) {
			target = filepath.Join(filepath.Dir(current), target)
		}
		current = target
	}
	return "", fmt.Errorf("too many levels of symbolic links resolving %s", path)
}
