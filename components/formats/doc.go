// Package formats serves the supported label formats as JSON options for
// admin-panel select inputs.
//
// The default handler responds to GET and HEAD requests and supports query and
// limit parameters to filter results. The backing list is embedded under
// data/formats.txt.
package formats
