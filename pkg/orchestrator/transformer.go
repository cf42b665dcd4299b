package orchestrator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/goliatone/go-printlabel/pkg/model"
)

// Transformer mutates TemplateData before rendering. Implementations can fill
// house captions, rewrite product names, or perform arbitrary patches.
type Transformer interface {
	Transform(ctx context.Context, data *model.TemplateData) error
}

// TransformerFunc adapts plain functions to the Transformer interface.
type TransformerFunc func(ctx context.Context, data *model.TemplateData) error

// Transform executes the wrapped function when non-nil.
func (fn TransformerFunc) Transform(ctx context.Context, data *model.TemplateData) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, data)
}

// JSONPresetTransformer applies declarative field patches loaded from a JSON
// document. Keys are TemplateData json names:
//
//	{
//	  "defaults":  {"pt_brand": "FreshMart", "pt_origin_country": "Xuất xứ"},
//	  "overrides": {"pt_original_price": "Giá niêm yết"}
//	}
//
// Defaults only fill empty fields; overrides always win.
type JSONPresetTransformer struct {
	document jsonTransformDocument
}

type jsonTransformDocument struct {
	Defaults  map[string]string `json:"defaults"`
	Overrides map[string]string `json:"overrides"`
}

// NewJSONPresetTransformer constructs a transformer from raw JSON bytes.
// Unknown field names are rejected up front.
func NewJSONPresetTransformer(data []byte) (*JSONPresetTransformer, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("json preset transformer: document is empty")
	}
	var document jsonTransformDocument
	if err := json.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("json preset transformer: parse document: %w", err)
	}
	known := templateDataFields()
	for _, patch := range []map[string]string{document.Defaults, document.Overrides} {
		for _, key := range sortedKeys(patch) {
			if _, ok := known[key]; !ok {
				return nil, fmt.Errorf("json preset transformer: field %q not found", key)
			}
		}
	}
	return &JSONPresetTransformer{document: document}, nil
}

// NewJSONPresetTransformerFromFS loads a JSON transformer document from the
// provided filesystem path.
func NewJSONPresetTransformerFromFS(fsys fs.FS, path string) (*JSONPresetTransformer, error) {
	if fsys == nil {
		return nil, errors.New("json preset transformer: filesystem is nil")
	}
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("json preset transformer: path is required")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("json preset transformer: read %s: %w", path, err)
	}
	return NewJSONPresetTransformer(data)
}

// Transform applies the declarative patches onto the supplied data.
func (t *JSONPresetTransformer) Transform(ctx context.Context, data *model.TemplateData) error {
	if data == nil {
		return errors.New("json preset transformer: template data is nil")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	fields, err := toFieldMap(*data)
	if err != nil {
		return fmt.Errorf("json preset transformer: %w", err)
	}
	for key, value := range t.document.Defaults {
		if strings.TrimSpace(fields[key]) == "" {
			fields[key] = value
		}
	}
	for key, value := range t.document.Overrides {
		fields[key] = value
	}

	patched, err := fromFieldMap(fields)
	if err != nil {
		return fmt.Errorf("json preset transformer: %w", err)
	}
	*data = patched
	return nil
}

func toFieldMap(data model.TemplateData) (map[string]string, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	fields := make(map[string]string)
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

func fromFieldMap(fields map[string]string) (model.TemplateData, error) {
	raw, err := json.Marshal(fields)
	if err != nil {
		return model.TemplateData{}, err
	}
	var out model.TemplateData
	if err := json.Unmarshal(raw, &out); err != nil {
		return model.TemplateData{}, err
	}
	return out, nil
}

// templateDataFields lists every json name TemplateData accepts, including
// omitempty fields that a zero value would drop.
func templateDataFields() map[string]struct{} {
	full := model.TemplateData{
		PriceDecimal:     "x",
		PriceSaleDecimal: "x",
		UnitPriceInfo:    "x",
		ProductInfo:      "x",
	}
	fields, err := toFieldMap(full)
	if err != nil {
		return nil
	}
	out := make(map[string]struct{}, len(fields))
	for key := range fields {
		out[key] = struct{}{}
	}
	return out
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
