package scaffold

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/vmod-tools/vmodgen/internal/platform"
	"github.com/vmod-tools/vmodgen/internal/templates"
	"github.com/vmod-tools/vmodgen/internal/vmodconf"
)

const (
	// PlaceholderFile keeps source-control systems that ignore empty
	// directories tracking m4/ until autotools populates it.
	PlaceholderFile = "PLACEHOLDER"

	// ExecutableScript is the one emitted file marked executable after
	// all writes complete.
	ExecutableScript = "autogen.sh"

	// seedToken is the substring of seed filenames replaced by the
	// configured module name.
	seedToken = "example"

	dirPerm    = 0o755
	filePerm   = 0o644
	scriptPerm = 0o755
)

// TopLevelFiles returns the fixed emission list, in write order. Each
// entry doubles as the catalog name of its template.
func TopLevelFiles() []string {
	return []string{
		"configure.ac",
		"autogen.sh",
		"Makefile.am",
		"README.rst",
		"LICENSE",
		"COPYING",
		"src/Makefile.am",
	}
}

// SrcSeeds returns the seed templates rendered into a fresh src/
// directory, in write order.
func SrcSeeds() []string {
	return []string{
		"src/vmod_example.vcc",
		"src/vmod_example.c",
	}
}

// SeedOutputName substitutes the module name for the seed token, so
// src/vmod_example.vcc becomes src/vmod_<name>.vcc.
func SeedOutputName(seed, name string) string {
	return strings.ReplaceAll(seed, seedToken, name)
}

// WriteError reports a failed filesystem write during generation.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Result holds the outcome of a generation run.
type Result struct {
	Root    string
	Files   []string
	Notices []string
}

// Generate inflates m4/ and src/ under root, then emits the top-level
// files. Progress is printed to out as it happens. The first failed
// render or write aborts the remaining steps; there is no partial
// retry.
func Generate(root string, cfg *vmodconf.Config, out io.Writer) (*Result, error) {
	data := templates.NewData(cfg)
	res := &Result{Root: root}

	if err := inflateM4(root, res, out); err != nil {
		return nil, err
	}
	if err := inflateSrc(root, cfg.Name, data, res, out); err != nil {
		return nil, err
	}
	if err := emitTopLevel(root, data, res, out); err != nil {
		return nil, err
	}
	return res, nil
}

func notice(res *Result, out io.Writer, msg string) {
	res.Notices = append(res.Notices, msg)
	fmt.Fprintf(out, "  [SKIP] %s\n", msg)
}

func wrote(res *Result, out io.Writer, rel string) {
	res.Files = append(res.Files, rel)
	fmt.Fprintf(out, "  [ OK ] Wrote %s\n", rel)
}

// inflateM4 creates m4/ with its placeholder file. An existing m4/ is
// left untouched so macros installed by later autotools runs survive.
func inflateM4(root string, res *Result, out io.Writer) error {
	dir := filepath.Join(root, "m4")
	if _, err := os.Stat(dir); err == nil {
		notice(res, out, "m4/ already exists, not touching it")
		return nil
	}
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return &WriteError{Path: dir, Err: err}
	}
	placeholder := filepath.Join(dir, PlaceholderFile)
	if err := os.WriteFile(placeholder, nil, filePerm); err != nil {
		return &WriteError{Path: placeholder, Err: err}
	}
	wrote(res, out, filepath.Join("m4", PlaceholderFile))
	return nil
}

// inflateSrc creates src/ and renders the seed pair into it, with the
// configured module name substituted into each filename. An existing
// src/ is left untouched to protect hand-edited sources.
func inflateSrc(root, name string, data *templates.Data, res *Result, out io.Writer) error {
	dir := filepath.Join(root, "src")
	if _, err := os.Stat(dir); err == nil {
		notice(res, out, "src/ already exists, not touching it")
		return nil
	}
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return &WriteError{Path: dir, Err: err}
	}
	for _, seed := range SrcSeeds() {
		rendered, err := templates.Render(seed, data)
		if err != nil {
			return err
		}
		rel := SeedOutputName(seed, name)
		path := filepath.Join(root, rel)
		if err := os.WriteFile(path, []byte(rendered), filePerm); err != nil {
			return &WriteError{Path: path, Err: err}
		}
		wrote(res, out, rel)
	}
	return nil
}

// emitTopLevel renders and writes the fixed emission list, overwriting
// whatever is already there. Unlike the inflators it performs no
// existence checks. After all files are written the bootstrap script
// is marked executable.
func emitTopLevel(root string, data *templates.Data, res *Result, out io.Writer) error {
	for _, name := range TopLevelFiles() {
		rendered, err := templates.Render(name, data)
		if err != nil {
			return err
		}
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
			return &WriteError{Path: filepath.Dir(path), Err: err}
		}
		if err := os.WriteFile(path, []byte(rendered), filePerm); err != nil {
			return &WriteError{Path: path, Err: err}
		}
		wrote(res, out, name)
	}

	script := filepath.Join(root, ExecutableScript)
	if err := platform.Chmod(script, scriptPerm); err != nil {
		return &WriteError{Path: script, Err: err}
	}
	return nil
}
