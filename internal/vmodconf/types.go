package vmodconf

// FileName is the configuration file vmodgen reads from the project root.
const FileName = "vmod.conf"

// Config is the parsed vmod.conf. Only Name is required; everything else is
// optional and, when absent, defaulted inside the templates at render time.
type Config struct {
	Name         string        `json:"name"`
	Author       string        `json:"author,omitempty"`
	Version      string        `json:"version,omitempty"`
	Src          string        `json:"src,omitempty"` // carried for compatibility, unused by the renderer
	RequiredLibs []RequiredLib `json:"required_libs,omitempty"`
	Copyright    string        `json:"copyright,omitempty"`
}

// RequiredLib names an external library the generated module links against,
// plus one function from it that the configure script probes for.
type RequiredLib struct {
	Name     string `json:"name"`
	Function string `json:"function"`
}
