// Package platform provides cross-platform filesystem operations: permission
// management and symlink chain resolution. On Unix systems it uses chmod and
// readlink directly; on Windows permission bits are a no-op.
package platform
