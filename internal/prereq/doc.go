// Package prereq verifies that the external build tools the generated
// skeleton depends on are present before any file is written. Each
// requirement is probed against a fixed list of standard system
// directories with transitive symlink resolution; the tools themselves
// are never invoked.
package prereq
