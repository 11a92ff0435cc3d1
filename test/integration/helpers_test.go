//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vmod-tools/vmodgen/internal/prereq"
)

// writeVmodConf writes content as <root>/vmod.conf.
func writeVmodConf(t *testing.T, root, content string) string {
	t.Helper()
	path := filepath.Join(root, "vmod.conf")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

// setupTools creates fake executables for every requirement in a temp
// directory and returns a checker probing only that directory.
func setupTools(t *testing.T) *prereq.Checker {
	t.Helper()
	dir := t.TempDir()
	for _, r := range prereq.Requirements() {
		path := filepath.Join(dir, r.Exe)
		if err := os.WriteFile(path, []byte("#!/bin/sh\n"), 0755); err != nil {
			t.Fatalf("writing %s: %v", path, err)
		}
	}
	return &prereq.Checker{Dirs: []string{dir}}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}

// assertTreeEmpty fails if root contains any entries.
func assertTreeEmpty(t *testing.T, root string) {
	t.Helper()
	entries, err := os.ReadDir(root)
	if err != nil {
		t.Fatalf("reading %s: %v", root, err)
	}
	if len(entries) != 0 {
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("expected empty tree, found: %s", strings.Join(names, ", "))
	}
}
