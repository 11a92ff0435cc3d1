package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed files
var catalogFS embed.FS

const (
	catalogDir = "files"
	tmplSuffix = ".tmpl"
)

// LookupError reports a logical name with no matching catalog entry.
type LookupError struct {
	Name string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("template not in catalog: %s", e.Name)
}

// Lookup returns the template source registered under the logical
// output filename, e.g. "configure.ac" or "src/vmod_example.vcc".
func Lookup(name string) (string, error) {
	data, err := catalogFS.ReadFile(catalogDir + "/" + name + tmplSuffix)
	if err != nil {
		return "", &LookupError{Name: name}
	}
	return string(data), nil
}

// Names returns every logical name in the catalog, sorted.
func Names() []string {
	var names []string
	fs.WalkDir(catalogFS, catalogDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		name := strings.TrimPrefix(path, catalogDir+"/")
		name = strings.TrimSuffix(name, tmplSuffix)
		names = append(names, name)
		return nil
	})
	sort.Strings(names)
	return names
}
