package server

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var contractYAML []byte

// Schema names validated by the render endpoints.
const (
	SchemaRenderRequest = "RenderRequest"
	SchemaBatchRequest  = "BatchRequest"
)

// Contract is the service's OpenAPI document, loaded and validated once.
type Contract struct {
	doc *openapi3.T
	raw []byte
}

// LoadContract parses and validates the embedded OpenAPI document.
func LoadContract(ctx context.Context) (*Contract, error) {
	return ParseContract(ctx, contractYAML)
}

// ParseContract parses and validates an OpenAPI document. Component schemas
// must resolve locally.
func ParseContract(ctx context.Context, raw []byte) (*Contract, error) {
	if len(raw) == 0 {
		return nil, errors.New("server: contract payload is empty")
	}
	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: false,
	}
	doc, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("server: load contract: %w", err)
	}
	if err := doc.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return nil, fmt.Errorf("server: validate contract: %w", err)
	}
	for _, name := range []string{SchemaRenderRequest, SchemaBatchRequest} {
		if ref := doc.Components.Schemas[name]; ref == nil || ref.Value == nil {
			return nil, fmt.Errorf("server: contract is missing schema %q", name)
		}
	}
	return &Contract{doc: doc, raw: raw}, nil
}

// Raw returns the document as served on /api/openapi.yaml.
func (c *Contract) Raw() []byte {
	return c.raw
}

// ValidateJSON checks body against the named component schema.
func (c *Contract) ValidateJSON(schema string, body []byte) error {
	ref := c.doc.Components.Schemas[schema]
	if ref == nil || ref.Value == nil {
		return fmt.Errorf("server: unknown schema %q", schema)
	}
	var value any
	if err := json.Unmarshal(body, &value); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBody, err)
	}
	if err := ref.Value.VisitJSON(value, openapi3.MultiErrors()); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBody, err)
	}
	return nil
}
