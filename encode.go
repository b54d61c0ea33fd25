package fsop

import (
	"fmt"
	"io"
	"strings"
)

// Encode packs the index's entries into FSOP container bytes and writes them
// to w in one piece.
//
// Entries are processed strictly in index order. Incomplete entries and
// entries whose blobs cannot be resolved are skipped, recorded in the
// returned PackResult, and reported through any WithWarnings callback; a
// partial pack is not an error. An encoded name longer than 255 bytes is a
// structural failure: Encode aborts with ErrNameTooLong and writes nothing.
//
// Each entry's name is encoded under its stored tag (Shift-JIS when the tag
// is empty). If the tag cannot represent the name, the Shift-JIS / UTF-8 /
// Latin-1 fallback chain is used and the fallback is reported as a warning.
func Encode(w io.Writer, idx *Index, src BlobSource, opts ...WriteOption) (*PackResult, error) {
	cfg := writeConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if idx == nil {
		return nil, fmt.Errorf("%w: index is nil", ErrInvalidIndex)
	}

	res := &PackResult{Total: len(idx.Shaders)}
	skip := func(i int, e Entry, reason string) {
		res.Skipped = append(res.Skipped, Skip{Index: i, Name: SafeName(e.Name), Reason: reason})
		cfg.warn(i, SafeName(e.Name), reason)
	}

	var out []byte
	for i, e := range idx.Shaders {
		if err := validateEntry(e); err != nil {
			skip(i, e, err.Error())
			continue
		}
		vs, err := src(e.VertexFile)
		if err != nil {
			skip(i, e, fmt.Sprintf("vertex blob %s: %v", e.VertexFile, err))
			continue
		}
		ps, err := src(e.PixelFile)
		if err != nil {
			skip(i, e, fmt.Sprintf("pixel blob %s: %v", e.PixelFile, err))
			continue
		}

		name := e.Name
		if !strings.HasSuffix(name, "\x00") {
			name += "\x00"
		}
		nameBytes, used, err := encodeName(name, e.Encoding)
		if err != nil {
			skip(i, e, err.Error())
			continue
		}
		if want := e.Encoding; want != "" && used != want {
			cfg.warn(i, SafeName(e.Name), fmt.Sprintf("encoding %q cannot represent name, fell back to %q", want, used))
		}

		out, err = appendRecord(out, record{nameBytes: nameBytes, vertex: vs, pixel: ps})
		if err != nil {
			return nil, fmt.Errorf("entry %d (%s): %w", i, SafeName(e.Name), err)
		}
		res.Packed++
	}

	if _, err := w.Write(out); err != nil {
		return nil, err
	}
	return res, nil
}
