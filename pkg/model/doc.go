// Package model defines the records the label engine consumes and produces.
//
// TemplateData is the renderer input contract: fully pre-formatted presentation
// strings, one record per printed label. Product, Country, PrintSelection and
// PrintTemplate mirror the upstream REST records that PrepareTemplateData
// assembles into TemplateData. Optional values are plain strings whose zero value
// is the rendered default, so renderers never interpolate a missing value.
package model
