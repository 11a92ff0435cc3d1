package prereq

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/vmod-tools/vmodgen/internal/platform"
)

// Requirement is one external tool the generated build system needs.
// Hint names the distribution package that provides the executable.
type Requirement struct {
	Exe  string
	Hint string
}

// Requirements returns the fixed prerequisite list, in check order.
func Requirements() []Requirement {
	return []Requirement{
		{Exe: "autoconf", Hint: "autoconf"},
		{Exe: "automake", Hint: "automake"},
		{Exe: "libtoolize", Hint: "libtool"},
		{Exe: "rst2man", Hint: "python3-docutils"},
		{Exe: "make", Hint: "make"},
	}
}

// StandardDirs returns the directories probed for executables, in
// search order. PATH is deliberately not consulted; the generated
// autotools skeleton assumes tools in these well-known locations.
func StandardDirs() []string {
	return []string{"/usr/local/bin", "/opt/local/bin", "/usr/bin", "/bin"}
}

// MissingError reports a prerequisite that could not be resolved in any
// of the checked directories.
type MissingError struct {
	Name string
	Hint string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("prerequisite %s not found (install the %s package)", e.Name, e.Hint)
}

// Checker probes a list of directories for required executables.
type Checker struct {
	Dirs []string
}

// NewChecker returns a Checker over the standard system directories.
func NewChecker() *Checker {
	return &Checker{Dirs: StandardDirs()}
}

// Find resolves exe against the checker's directories. Each candidate
// has its symlink chain resolved before the execute bits are tested.
// It returns the resolved path of the first match.
func (c *Checker) Find(exe string) (string, bool) {
	for _, dir := range c.Dirs {
		resolved, err := platform.ResolveSymlinks(filepath.Join(dir, exe))
		if err != nil {
			continue
		}
		if platform.IsExecutable(resolved) {
			return resolved, true
		}
	}
	return "", false
}

// Check verifies the requirements in order and stops at the first one
// that cannot be resolved. A nil error means every tool was found.
func (c *Checker) Check(reqs []Requirement) error {
	for _, r := range reqs {
		if _, ok := c.Find(r.Exe); !ok {
			return &MissingError{Name: r.Exe, Hint: r.Hint}
		}
	}
	return nil
}

// Report writes one status line per requirement to w, checking all of
// them regardless of failures, and returns how many are missing.
func (c *Checker) Report(w io.Writer, reqs []Requirement) int {
	missing := 0
	for _, r := range reqs {
		path, ok := c.Find(r.Exe)
		if !ok {
			fmt.Fprintf(w, "  [MISS] %s (install the %s package)\n", r.Exe, r.Hint)
			missing++
			continue
		}
		fmt.Fprintf(w, "  [ OK ] %s found at %s\n", r.Exe, path)
	}
	return missing
}
