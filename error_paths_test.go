package fsop

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestEncodeMissingVertexBlob(t *testing.T) {
	idx := &Index{Shaders: []Entry{
		{Name: "Gone\x00", VertexFile: "Gone_vs.fxc", PixelFile: "Gone_ps.fxc"},
	}}
	blobs := map[string][]byte{"Gone_ps.fxc": {1}}

	var buf bytes.Buffer
	res, err := Encode(&buf, idx, mapSource(blobs))
	if err != nil {
		t.Fatalf("missing blob must not abort the pack: %v", err)
	}
	if res.Packed != 0 || res.Total != 1 {
		t.Fatalf("got %d of %d packed, want 0 of 1", res.Packed, res.Total)
	}
	if buf.Len() != 0 {
		t.Fatalf("skipped entry emitted %d bytes", buf.Len())
	}
	if len(res.Skipped) != 1 || res.Skipped[0].Index != 0 {
		t.Fatalf("unexpected skip report: %+v", res.Skipped)
	}
	if !strings.Contains(res.Skipped[0].Reason, "vertex blob") {
		t.Fatalf("skip reason %q does not name the vertex blob", res.Skipped[0].Reason)
	}
}

func TestEncodeSkipsIncompleteEntries(t *testing.T) {
	idx := &Index{Shaders: []Entry{
		{Name: "", VertexFile: "a_vs.fxc", PixelFile: "a_ps.fxc"},
		{Name: "NoFiles\x00"},
		{Name: "Escape\x00", VertexFile: "../evil_vs.fxc", PixelFile: "Escape_ps.fxc"},
		{Name: "Good\x00", VertexFile: "Good_vs.fxc", PixelFile: "Good_ps.fxc"},
	}}
	blobs := map[string][]byte{
		"a_vs.fxc":      {},
		"a_ps.fxc":      {},
		"Escape_ps.fxc": {},
		"Good_vs.fxc":   {7},
		"Good_ps.fxc":   {8},
	}

	var buf bytes.Buffer
	res, err := Encode(&buf, idx, mapSource(blobs))
	if err != nil {
		t.Fatal(err)
	}
	if res.Packed != 1 || res.Total != 4 || len(res.Skipped) != 3 {
		t.Fatalf("unexpected result: %+v", res)
	}

	shaders, err := Decode(buf.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if len(shaders) != 1 || shaders[0].Name != "Good\x00" {
		t.Fatalf("expected only the complete entry to be packed, got %+v", shaders)
	}
}

func TestEncodeNameTooLongAborts(t *testing.T) {
	long := strings.Repeat("a", 300)
	idx := &Index{Shaders: []Entry{
		{Name: "First\x00", VertexFile: "First_vs.fxc", PixelFile: "First_ps.fxc"},
		{Name: long, VertexFile: "First_vs.fxc", PixelFile: "First_ps.fxc"},
	}}
	blobs := map[string][]byte{"First_vs.fxc": {1}, "First_ps.fxc": {2}}

	var buf bytes.Buffer
	_, err := Encode(&buf, idx, mapSource(blobs))
	if !errors.Is(err, ErrNameTooLong) {
		t.Fatalf("expected ErrNameTooLong, got %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("aborted encode produced %d bytes of partial output", buf.Len())
	}
}

func TestEncodeWarningsCallback(t *testing.T) {
	idx := &Index{Shaders: []Entry{
		{Name: "Missing\x00", VertexFile: "Missing_vs.fxc", PixelFile: "Missing_ps.fxc"},
		// Latin-1 cannot represent kana; the fallback chain must kick in.
		{Name: "シェーダ\x00", Encoding: EncodingLatin1, VertexFile: "s_vs.fxc", PixelFile: "s_ps.fxc"},
	}}
	blobs := map[string][]byte{"s_vs.fxc": {}, "s_ps.fxc": {}}

	var warnings []Warning
	var buf bytes.Buffer
	res, err := Encode(&buf, idx, mapSource(blobs), WithWarnings(func(w Warning) {
		warnings = append(warnings, w)
	}))
	if err != nil {
		t.Fatal(err)
	}
	if res.Packed != 1 {
		t.Fatalf("got %d packed, want 1", res.Packed)
	}
	if len(warnings) != 2 {
		t.Fatalf("got %d warnings, want 2: %+v", len(warnings), warnings)
	}
	if warnings[0].Entry != 0 {
		t.Errorf("first warning should be the skip of entry 0: %+v", warnings[0])
	}
	if warnings[1].Entry != 1 || !strings.Contains(warnings[1].Detail, "fell back") {
		t.Errorf("second warning should report the encoding fallback: %+v", warnings[1])
	}

	// The fallback entry must still round-trip.
	shaders, err := Decode(buf.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if shaders[0].Name != "シェーダ\x00" {
		t.Fatalf("got name %q", shaders[0].Name)
	}
}

func TestEncodeUnknownEncodingFallsBack(t *testing.T) {
	idx := &Index{Shaders: []Entry{
		{Name: "Plain\x00", Encoding: Encoding("ascii"), VertexFile: "p_vs.fxc", PixelFile: "p_ps.fxc"},
	}}
	blobs := map[string][]byte{"p_vs.fxc": {}, "p_ps.fxc": {}}

	var buf bytes.Buffer
	res, err := Encode(&buf, idx, mapSource(blobs))
	if err != nil {
		t.Fatal(err)
	}
	if res.Packed != 1 {
		t.Fatalf("unknown tag should fall back, not skip: %+v", res)
	}
}
