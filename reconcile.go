package fsop

import (
	"sort"
	"strings"
)

// Reconcile merges a persisted index against the live blob-file listing of
// the extraction directory.
//
// Every name in available ending in _vs.fxc whose matching _ps.fxc is also
// present, with neither file referenced by an existing entry, becomes a new
// entry: base name plus NUL terminator, most compact inferred encoding, and
// the two file references. New entries are appended after the persisted ones
// in base-name order, so the result does not depend on listing order.
// Persisted entries are never reordered, removed, or modified.
//
// Reconcile returns the appended entries; callers should re-persist the
// sidecar when the result is non-empty.
func Reconcile(idx *Index, available []string) []Entry {
	known := make(map[string]bool, 2*len(idx.Shaders))
	for _, e := range idx.Shaders {
		if e.VertexFile != "" {
			known[e.VertexFile] = true
		}
		if e.PixelFile != "" {
			known[e.PixelFile] = true
		}
	}

	present := make(map[string]bool, len(available))
	for _, name := range available {
		present[name] = true
	}

	var added []Entry
	processed := make(map[string]bool)
	for _, vsName := range available {
		if known[vsName] || processed[vsName] {
			continue
		}
		base, ok := strings.CutSuffix(vsName, vertexSuffix+DefaultBlobExt)
		if !ok {
			continue
		}
		psName := base + pixelSuffix + DefaultBlobExt
		if !present[psName] || known[psName] || processed[psName] {
			continue
		}
		processed[vsName] = true
		processed[psName] = true

		name := base
		if !strings.HasSuffix(name, "\x00") {
			name += "\x00"
		}
		added = append(added, Entry{
			Name:       name,
			Encoding:   DetectEncoding(base),
			VertexFile: vsName,
			PixelFile:  psName,
		})
	}

	sort.Slice(added, func(i, j int) bool { return added[i].Name < added[j].Name })
	idx.Shaders = append(idx.Shaders, added...)
	return added
}
