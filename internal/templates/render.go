package templates

import (
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/Masterminds/sprig/v3"

	"github.com/vmod-tools/vmodgen/internal/vmodconf"
)

// Data holds the variables available to every catalog template. It is
// built once per run and never mutated afterwards.
type Data struct {
	Vmod  *vmodconf.Config
	Today string
}

// NewData pairs cfg with the current date in YYYY-MM-DD form.
func NewData(cfg *vmodconf.Config) *Data {
	return &Data{
		Vmod:  cfg,
		Today: time.Now().Format("2006-01-02"),
	}
}

// RenderError reports a parse or execution failure for a catalog
// template. Templates are fixed embedded data, so a parse failure is a
// packaging defect rather than an input problem.
type RenderError struct {
	Name string
	Err  error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("rendering template %s: %v", e.Name, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// Render looks up the named template and expands it against data.
func Render(name string, data *Data) (string, error) {
	src, err := Lookup(name)
	if err != nil {
		return "", err
	}
	tmpl, err := template.New(name).Funcs(sprig.TxtFuncMap()).Parse(src)
	if err != nil {
		return "", &RenderError{Name: name, Err: err}
	}
	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", &RenderError{Name: name, Err: err}
	}
	return buf.String(), nil
}
