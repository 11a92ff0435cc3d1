package vmodconf

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/tailscale/hujson"
)

// ErrNotFound reports that the configuration file does not exist. It wraps
// fs.ErrNotExist so callers can test either sentinel.
var ErrNotFound = fmt.Errorf("vmod.conf not found: %w", fs.ErrNotExist)

// ParseError reports configuration content that is not valid relaxed JSON.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// InvalidError reports a configuration that parsed but failed schema
// validation.
type InvalidError struct {
	Path   string
	Issues []ValidationIssue
}

func (e *InvalidError) Error() string {
	msgs := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		msg := issue.Message
		if issue.Path != "" {
			msg = issue.Path + ": " + msg
		}
		msgs = append(msgs, msg)
	}
	return fmt.Sprintf("invalid %s: %s", e.Path, strings.Join(msgs, "; "))
}

// Load reads, parses, and validates the configuration at path. The content is
// standardized from relaxed JSON (trailing commas, comments) to strict JSON
// before unmarshaling. A missing file yields ErrNotFound; malformed content a
// *ParseError; a schema violation an *InvalidError.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return parse(path, data)
}

// parse standardizes raw relaxed-JSON bytes, validates the result against the
// embedded schema, and only then unmarshals. Validation runs before decoding
// so a wrong-typed field surfaces as a schema violation, not a decode failure.
func parse(path string, data []byte) (*Config, error) {
	std, err := hujson.Standardize(data)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	result, err := Validate(std)
	if err != nil {
		return nil, fmt.Errorf("validating %s: %w", path, err)
	}
	if !result.Valid {
		return nil, &InvalidError{Path: path, Issues: result.Issues}
	}

	var cfg Config
	if err := json.Unmarshal(std, &cfg); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	return &cfg, nil
}
