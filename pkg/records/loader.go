package records

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-printlabel/pkg/model"
)

// Batch holds the templates and selections of one or more record files.
// Selections keep file order; files are visited in lexical order.
type Batch struct {
	templates    map[string]*model.PrintTemplate
	templateIDs  []string
	selections   []model.PrintSelection
	selectionIDs map[string]struct{}
}

type documentFile struct {
	Templates  []model.PrintTemplate  `json:"templates" yaml:"templates"`
	Selections []model.PrintSelection `json:"selections" yaml:"selections"`
}

// NewBatch returns an empty batch.
func NewBatch() *Batch {
	return &Batch{
		templates:    make(map[string]*model.PrintTemplate),
		selectionIDs: make(map[string]struct{}),
	}
}

// LoadFile parses a single .json, .yaml or .yml record file.
func LoadFile(path string) (*Batch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("records: read %s: %w", path, err)
	}
	batch := NewBatch()
	if err := batch.Add(data, path); err != nil {
		return nil, err
	}
	return batch, nil
}

// LoadFS walks fsys and merges every JSON/YAML record file into one batch.
// When fsys is nil the returned batch is empty.
func LoadFS(fsys fs.FS) (*Batch, error) {
	batch := NewBatch()
	if fsys == nil {
		return batch, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isRecordFile(path) {
			return nil
		}
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("records: read %s: %w", path, err)
		}
		return batch.Add(data, path)
	})
	if err != nil {
		return nil, err
	}
	return batch, nil
}

// Add parses one document and merges it into the batch. source names the
// document in error messages.
func (b *Batch) Add(data []byte, source string) error {
	doc, err := parseDocument(data, source)
	if err != nil {
		return err
	}

	for i := range doc.Templates {
		tpl := doc.Templates[i]
		id := strings.TrimSpace(tpl.ID)
		if id == "" {
			return fmt.Errorf("records: file %s defines a print template without id", source)
		}
		if _, exists := b.templates[id]; exists {
			return fmt.Errorf("%w %q (file %s)", ErrDuplicateTemplate, id, source)
		}
		tpl.ID = id
		b.templates[id] = &tpl
		b.templateIDs = append(b.templateIDs, id)
	}

	for _, sel := range doc.Selections {
		id := strings.TrimSpace(sel.ID)
		if id != "" {
			if _, exists := b.selectionIDs[id]; exists {
				return fmt.Errorf("%w %q (file %s)", ErrDuplicateSelection, id, source)
			}
			b.selectionIDs[id] = struct{}{}
		}
		sel.ID = id
		b.selections = append(b.selections, sel)
	}
	return nil
}

// Selections returns the selections in load order.
func (b *Batch) Selections() []model.PrintSelection {
	if b == nil {
		return nil
	}
	return append([]model.PrintSelection(nil), b.selections...)
}

// Templates returns the templates in load order.
func (b *Batch) Templates() []model.PrintTemplate {
	if b == nil {
		return nil
	}
	out := make([]model.PrintTemplate, 0, len(b.templateIDs))
	for _, id := range b.templateIDs {
		out = append(out, *b.templates[id])
	}
	return out
}

// Template looks a print template up by ID.
func (b *Batch) Template(id string) (*model.PrintTemplate, bool) {
	if b == nil {
		return nil, false
	}
	tpl, ok := b.templates[strings.TrimSpace(id)]
	return tpl, ok
}

// TemplateFor resolves the print template of a selection: by its
// PrintTemplateID first, then by the first template configured for the
// selection's country.
func (b *Batch) TemplateFor(sel model.PrintSelection) (*model.PrintTemplate, bool) {
	if b == nil {
		return nil, false
	}
	if tpl, ok := b.Template(sel.PrintTemplateID); ok {
		return tpl, true
	}
	if sel.Country == nil || strings.TrimSpace(sel.Country.ID) == "" {
		return nil, false
	}
	for _, id := range b.templateIDs {
		if tpl := b.templates[id]; tpl.CountryID == sel.Country.ID {
			return tpl, true
		}
	}
	return nil, false
}

// Len reports the number of selections.
func (b *Batch) Len() int {
	if b == nil {
		return 0
	}
	return len(b.selections)
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("%w: %s", ErrEmptyDocument, source)
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	doc = documentFile{}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	return documentFile{}, fmt.Errorf("records: parse %s: invalid JSON or YAML", source)
}

func isRecordFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
