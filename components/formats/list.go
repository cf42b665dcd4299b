package formats

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/goliatone/go-printlabel/pkg/render"
)

//go:embed data/formats.txt
var dataFS embed.FS

const defaultListPath = "data/formats.txt"

// Entry describes one selectable format.
type Entry struct {
	Value  string `json:"value"`
	Label  string `json:"label"`
	Canvas string `json:"canvas,omitempty"`
}

var (
	defaultOnce    sync.Once
	defaultEntries []Entry
	defaultErr     error
)

// DefaultEntries returns the embedded format list in display order.
func DefaultEntries() ([]Entry, error) {
	defaultOnce.Do(func() {
		f, err := dataFS.Open(defaultListPath)
		if err != nil {
			defaultErr = err
			return
		}
		defer func() { _ = f.Close() }()

		entries, err := LoadEntries(f)
		if err != nil {
			defaultErr = err
			return
		}
		defaultEntries = entries
	})

	if defaultErr != nil {
		return nil, defaultErr
	}
	return append([]Entry{}, defaultEntries...), nil
}

// LoadEntries parses "value | label | canvas" lines. Blank lines and # comments
// are skipped, duplicates keep the first occurrence, and values must name a
// known format.
func LoadEntries(r io.Reader) ([]Entry, error) {
	if r == nil {
		return nil, fmt.Errorf("formats: missing reader")
	}

	scanner := bufio.NewScanner(r)
	entries := make([]Entry, 0, len(render.Formats()))
	seen := map[string]struct{}{}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Split(line, "|")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}

		format, ok := render.LookupFormat(parts[0])
		if !ok {
			return nil, fmt.Errorf("formats: unknown format %q", parts[0])
		}
		value := string(format)
		if _, dup := seen[value]; dup {
			continue
		}
		seen[value] = struct{}{}

		entry := Entry{Value: value, Label: strings.ToUpper(value)}
		if len(parts) > 1 && parts[1] != "" {
			entry.Label = parts[1]
		}
		if len(parts) > 2 {
			entry.Canvas = parts[2]
		}
		entries = append(entries, entry)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}
