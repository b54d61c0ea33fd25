package fsop

import (
	"encoding/json"
	"fmt"
)

// indexInfo is a hint for people hand-editing the sidecar.
const indexInfo = `Edit ` + DefaultBlobExt + ` files freely. To add a shader: add entry with "name", "vertex_shader_file", "pixel_shader_file". Order matters for repacking.`

// ParseIndex parses the sidecar index written by Unpack (or hand-edited
// since). The "shaders" list must be present, even if empty.
func ParseIndex(data []byte) (*Index, error) {
	var idx Index
	if err := json.Unmarshal(data, &idx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidIndex, err)
	}
	if idx.Shaders == nil {
		return nil, fmt.Errorf(`%w: missing "shaders" list`, ErrInvalidIndex)
	}
	return &idx, nil
}

// MarshalPretty serializes the index the way Unpack writes the sidecar:
// two-space indentation, one object per entry, suitable for hand editing.
func (idx *Index) MarshalPretty() ([]byte, error) {
	return json.MarshalIndent(idx, "", "  ")
}
