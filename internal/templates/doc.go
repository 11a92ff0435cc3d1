// Package templates holds the embedded catalog of output templates and
// the renderer that expands them. Every template is addressed by the
// logical name of the file it produces; the catalog is fixed at build
// time and has no runtime file dependency.
package templates
