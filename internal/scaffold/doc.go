// Package scaffold drives the generation pipeline: inflate the m4/ and
// src/ directories with seed content, then emit the fixed list of
// top-level build files from the embedded template catalog. Existing
// m4/ and src/ directories are never touched; top-level files are
// always overwritten.
package scaffold
