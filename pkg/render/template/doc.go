// Package template defines the seam between label renderers and the template
// engine that executes their markup. The gotemplate subpackage provides the
// pongo2-backed implementation used by default.
package template
