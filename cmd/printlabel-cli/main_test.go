package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-printlabel/internal/prompt"
	"github.com/goliatone/go-printlabel/pkg/orchestrator"
)

const recordsFile = "../../pkg/records/testdata/basic/02_korea.json"

func TestRun_RendersRecordsFile(t *testing.T) {
	var stdout bytes.Buffer
	err := run(context.Background(), []string{"-input", recordsFile, "-format", "v1", "-locale", "ko"}, &stdout, nil)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	out := stdout.String()
	for _, want := range []string{"label-v1", "FreshMart Seoul", "🇰🇷", "-20%"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output", want)
		}
	}
}

func TestRun_WritesOutputFile(t *testing.T) {
	target := filepath.Join(t.TempDir(), "labels.html")

	if err := run(context.Background(), []string{"-input", recordsFile, "-output", target}, &bytes.Buffer{}, nil); err != nil {
		t.Fatalf("run: %v", err)
	}
	raw, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(raw), "label-v1") {
		t.Fatalf("unexpected output %q", raw)
	}
}

func TestRun_RequiresInput(t *testing.T) {
	if err := run(context.Background(), nil, &bytes.Buffer{}, nil); err == nil {
		t.Fatalf("expected error without -input or -interactive")
	}
}

func TestRun_Interactive(t *testing.T) {
	driver := &scriptedDriver{
		inputs: []string{
			"Táo Fuji", "FJ-001", "Japan", "JP", "FreshMart", "Xuất xứ", "Mã SP", "Giá gốc",
			"100000", "75000",
		},
	}

	var stdout bytes.Buffer
	if err := run(context.Background(), []string{"-interactive"}, &stdout, driver); err != nil {
		t.Fatalf("run: %v", err)
	}
	out := stdout.String()
	if !strings.Contains(out, "label-a4") || !strings.Contains(out, "Táo Fuji") {
		t.Fatalf("expected a4 label for the collected record")
	}
	if strings.Contains(out, orchestrator.PageBreak) {
		t.Fatalf("a single label must not carry a page break")
	}
}

type scriptedDriver struct {
	inputs []string
	pos    int
}

func (d *scriptedDriver) Input(_ context.Context, cfg prompt.InputConfig) (string, error) {
	if d.pos >= len(d.inputs) {
		return cfg.Default, nil
	}
	v := d.inputs[d.pos]
	d.pos++
	return v, nil
}

func (d *scriptedDriver) Confirm(context.Context, prompt.ConfirmConfig) (bool, error) {
	return false, nil
}

func (d *scriptedDriver) Select(context.Context, prompt.SelectConfig) (int, error) {
	return 0, nil
}

func (d *scriptedDriver) TextArea(context.Context, prompt.TextAreaConfig) (string, error) {
	return "", nil
}

func (d *scriptedDriver) Info(context.Context, string) error { return nil }
