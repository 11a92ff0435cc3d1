// Package vmodconf loads and validates vmod.conf, the small JSON document
// describing the module to scaffold. The file is parsed as relaxed JSON
// (trailing commas and comments are tolerated), then checked against an
// embedded JSON Schema. Absent optional fields stay absent; fallbacks are
// applied at render time by the templates, never here.
package vmodconf
