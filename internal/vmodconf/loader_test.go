package vmodconf

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"
)

const testdataDir = "testdata"

func testPath(name string) string {
	return filepath.Join(testdataDir, name)
}

func TestLoad_Full(t *testing.T) {
	cfg, err := Load(testPath("valid-full.conf"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Name != "curl" {
		t.Errorf("Name = %q, want %q", cfg.Name, "curl")
	}
	if cfg.Author != "Ada Example <ada@example.com>" {
		t.Errorf("Author = %q, want %q", cfg.Author, "Ada Example <ada@example.com>")
	}
	if cfg.Version != "0.3" {
		t.Errorf("Version = %q, want %q", cfg.Version, "0.3")
	}
	if cfg.Src != "src" {
		t.Errorf("Src = %q, want %q", cfg.Src, "src")
	}
	if len(cfg.RequiredLibs) != 2 {
		t.Fatalf("RequiredLibs len = %d, want 2", len(cfg.RequiredLibs))
	}
	if cfg.RequiredLibs[1].Name != "mhash" {
		t.Errorf("RequiredLibs[1].Name = %q, want %q", cfg.RequiredLibs[1].Name, "mhash")
	}
	if cfg.RequiredLibs[1].Function != "mhash_count" {
		t.Errorf("RequiredLibs[1].Function = %q, want %q", cfg.RequiredLibs[1].Function, "mhash_count")
	}
	if cfg.Copyright != "Copyright (c) 2016 Example Software AS" {
		t.Errorf("Copyright = %q, want %q", cfg.Copyright, "Copyright (c) 2016 Example Software AS")
	}
}

func TestLoad_MinimalLeavesOptionalFieldsEmpty(t *testing.T) {
	cfg, err := Load(testPath("valid-minimal.conf"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Name != "querystring" {
		t.Errorf("Name = %q, want %q", cfg.Name, "querystring")
	}
	// No defaulting happens at load time.
	if cfg.Author != "" {
		t.Errorf("Author = %q, want empty", cfg.Author)
	}
	if cfg.Version != "" {
		t.Errorf("Version = %q, want empty", cfg.Version)
	}
	if cfg.RequiredLibs != nil {
		t.Errorf("RequiredLibs = %v, want nil", cfg.RequiredLibs)
	}
}

func TestLoad_RelaxedSyntax(t *testing.T) {
	// Trailing commas and comments must parse.
	cfg, err := Load(testPath("valid-relaxed.conf"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Name != "statsd" {
		t.Errorf("Name = %q, want %q", cfg.Name, "statsd")
	}
	if len(cfg.RequiredLibs) != 1 {
		t.Fatalf("RequiredLibs len = %d, want 1", len(cfg.RequiredLibs))
	}
	if cfg.RequiredLibs[0].Function != "mhash_count" {
		t.Errorf("RequiredLibs[0].Function = %q, want %q", cfg.RequiredLibs[0].Function, "mhash_count")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "vmod.conf"))
	if err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("errors.Is(err, ErrNotFound) = false for %v", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("errors.Is(err, fs.ErrNotExist) = false for %v", err)
	}
}

func TestLoad_NotJSON(t *testing.T) {
	_, err := Load(testPath("invalid-not-json.conf"))
	if err == nil {
		t.Fatal("expected error for malformed content, got nil")
	}
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %T: %v", err, err)
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("parse failure must not look like a missing file")
	}
}

func TestLoad_SchemaViolations(t *testing.T) {
	tests := []struct {
		file string
		desc string
	}{
		{"invalid-missing-name.conf", "missing required name"},
		{"invalid-bad-name.conf", "name violates identifier pattern"},
		{"invalid-bad-libs.conf", "required_libs entry missing function"},
		{"invalid-typed-name.conf", "name is a number, not a string"},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			_, err := Load(testPath(tt.file))
			if err == nil {
				t.Fatalf("expected error (%s), got nil", tt.desc)
			}
			var invalidErr *InvalidError
			if !errors.As(err, &invalidErr) {
				t.Fatalf("expected *InvalidError, got %T: %v", err, err)
			}
			if len(invalidErr.Issues) == 0 {
				t.Error("expected at least one validation issue")
			}
			var parseErr *ParseError
			if errors.As(err, &parseErr) {
				t.Error("schema violation must not be reported as a parse failure")
			}
		})
	}
}
