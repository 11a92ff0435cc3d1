package prereq

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeExe(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestFind_FirstDirWins(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	wantPath := writeExe(t, first, "autoconf")
	writeExe(t, second, "autoconf")

	c := &Checker{Dirs: []string{first, second}}
	got, ok := c.Find("autoconf")
	if !ok {
		t.Fatal("Find = not found, want found")
	}
	if got != wantPath {
		t.Errorf("Find path = %q, want %q", got, wantPath)
	}
}

func TestFind_SkipsNonExecutable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "make")
	if err := os.WriteFile(path, []byte("data"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	c := &Checker{Dirs: []string{dir}}
	if _, ok := c.Find("make"); ok {
		t.Error("Find reported a non-executable file as satisfied")
	}
}

func TestFind_ResolvesSymlinkChain(t *testing.T) {
	binDir := t.TempDir()
	realDir := t.TempDir()
	real := writeExe(t, realDir, "automake-1.16")
	link := filepath.Join(binDir, "automake")
	if err := os.Symlink(real, link); err != nil {
		t.Fatalf("symlink: %v", err)
	}

	c := &Checker{Dirs: []string{binDir}}
	got, ok := c.Find("automake")
	if !ok {
		t.Fatal("Find = not found, want found through symlink")
	}
	if got != real {
		t.Errorf("Find path = %q, want resolved target %q", got, real)
	}
}

func TestFind_DanglingSymlinkFallsThrough(t *testing.T) {
	brokenDir := t.TempDir()
	goodDir := t.TempDir()
	if err := os.Symlink(filepath.Join(brokenDir, "gone"), filepath.Join(brokenDir, "libtoolize")); err != nil {
		t.Fatalf("symlink: %v", err)
	}
	want := writeExe(t, goodDir, "libtoolize")

	c := &Checker{Dirs: []string{brokenDir, goodDir}}
	got, ok := c.Find("libtoolize")
	if !ok {
		t.Fatal("Find = not found, want found in later directory")
	}
	if got != want {
		t.Errorf("Find path = %q, want %q", got, want)
	}
}

func TestCheck_AllPresent(t *testing.T) {
	dir := t.TempDir()
	for _, r := range Requirements() {
		writeExe(t, dir, r.Exe)
	}

	c := &Checker{Dirs: []string{dir}}
	if err := c.Check(Requirements()); err != nil {
		t.Errorf("Check error: %v", err)
	}
}

func TestCheck_FailFastOnFirstMissing(t *testing.T) {
	dir := t.TempDir()
	writeExe(t, dir, "autoconf")
	// automake and everything after it are absent.

	c := &Checker{Dirs: []string{dir}}
	err := c.Check(Requirements())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	var missing *MissingError
	if !errors.As(err, &missing) {
		t.Fatalf("expected *MissingError, got %T: %v", err, err)
	}
	if missing.Name != "automake" {
		t.Errorf("MissingError.Name = %q, want %q (first missing wins)", missing.Name, "automake")
	}
	if missing.Hint != "automake" {
		t.Errorf("MissingError.Hint = %q, want %q", missing.Hint, "automake")
	}
}

func TestMissingError_NamesHint(t *testing.T) {
	err := &MissingError{Name: "rst2man", Hint: "python3-docutils"}
	msg := err.Error()
	if !strings.Contains(msg, "rst2man") {
		t.Errorf("message %q does not name the executable", msg)
	}
	if !strings.Contains(msg, "python3-docutils") {
		t.Errorf("message %q does not name the package hint", msg)
	}
}

func TestReport_ChecksAll(t *testing.T) {
	dir := t.TempDir()
	writeExe(t, dir, "autoconf")
	writeExe(t, dir, "make")

	c := &Checker{Dirs: []string{dir}}
	var buf strings.Builder
	missing := c.Report(&buf, Requirements())

	if missing != 3 {
		t.Errorf("missing = %d, want 3", missing)
	}
	out := buf.String()
	if !strings.Contains(out, "[ OK ] autoconf") {
		t.Errorf("output missing OK line for autoconf:\n%s", out)
	}
	if !strings.Contains(out, "[MISS] automake") {
		t.Errorf("output missing MISS line for automake:\n%s", out)
	}
	// make is last in the list but must still be reported.
	if !strings.Contains(out, "[ OK ] make") {
		t.Errorf("output missing OK line for make:\n%s", out)
	}
}

func TestRequirements_Order(t *testing.T) {
	want := []string{"autoconf", "automake", "libtoolize", "rst2man", "make"}
	reqs := Requirements()
	if len(reqs) != len(want) {
		t.Fatalf("len = %d, want %d", len(reqs), len(want))
	}
	for i, exe := range want {
		if reqs[i].Exe != exe {
			t.Errorf("Requirements()[%d].Exe = %q, want %q", i, reqs[i].Exe, exe)
		}
	}
}
