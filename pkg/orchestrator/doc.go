// Package orchestrator turns print records into label markup: it prepares
// TemplateData from a print selection and its print template, resolves the
// format renderer and joins multi-item runs with page breaks.
package orchestrator
