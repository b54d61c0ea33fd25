package fsop

import (
	"fmt"
	"path"
	"strings"
)

// validateEntry checks an index record for the fields packing requires.
// Failures are per-entry: the caller skips the record and reports it rather
// than aborting the pack.
func validateEntry(e Entry) error {
	if e.Name == "" {
		return fmt.Errorf("%w: missing name", ErrIncompleteEntry)
	}
	if e.VertexFile == "" || e.PixelFile == "" {
		return fmt.Errorf("%w: missing shader file reference", ErrIncompleteEntry)
	}
	if err := validateBlobRef(e.VertexFile); err != nil {
		return fmt.Errorf("%w: vertex_shader_file: %v", ErrIncompleteEntry, err)
	}
	if err := validateBlobRef(e.PixelFile); err != nil {
		return fmt.Errorf("%w: pixel_shader_file: %v", ErrIncompleteEntry, err)
	}
	return nil
}

// validateBlobRef rejects blob references that would resolve outside the
// extraction directory. References come from a hand-editable JSON file and
// are handed straight to the host's blob lookup.
func validateBlobRef(p string) error {
	if strings.TrimSpace(p) == "" {
		return fmt.Errorf("reference is empty")
	}
	if strings.HasPrefix(p, "/") {
		return fmt.Errorf("reference must not be absolute")
	}
	if strings.Contains(p, "\\") {
		return fmt.Errorf("reference must use forward slashes")
	}
	clean := path.Clean(p)
	if clean != p {
		return fmt.Errorf("reference must be normalized: %q", clean)
	}
	if clean == "." || clean == ".." || strings.HasPrefix(clean, "../") {
		return fmt.Errorf("reference must not escape the extraction directory")
	}
	return nil
}
