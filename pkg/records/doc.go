// Package records loads print templates and print selections from JSON or
// YAML files, the shapes the upstream REST API returns.
package records
