package fsop

import "fmt"

// Decode reads an FSOP container from data.
//
// Records are decoded back to back from offset 0 until the buffer is
// exhausted; the format stores no record count, so end of buffer is the only
// terminator. A buffer whose length is not an exact sum of record lengths
// fails with ErrTruncated and no partial result.
//
// Each shader's name is decoded through the Shift-JIS / UTF-8 / Latin-1
// fallback chain, and the tag the name round-trips under is recorded in
// Shader.Encoding so a later Encode reproduces the original name bytes.
// Blob bytes are returned de-obfuscated.
func Decode(data []byte, opts ...ReadOption) ([]Shader, error) {
	cfg := readConfig{limits: defaultLimits()}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.limits = cfg.limits.withDefaults()

	var shaders []Shader
	off := 0
	for off < len(data) {
		rec, next, err := readRecord(data, off)
		if err != nil {
			return nil, err
		}
		if len(shaders) >= cfg.limits.MaxShaders {
			return nil, fmt.Errorf("%w: more than %d shaders", ErrLimitExceeded, cfg.limits.MaxShaders)
		}
		if len(rec.vertex) > cfg.limits.MaxBlobSize || len(rec.pixel) > cfg.limits.MaxBlobSize {
			return nil, fmt.Errorf("%w: blob larger than %d bytes at offset %d", ErrLimitExceeded, cfg.limits.MaxBlobSize, off)
		}
		name := decodeName(rec.nameBytes)
		shaders = append(shaders, Shader{
			Name:     name,
			Encoding: detectStoredEncoding(name),
			Vertex:   rec.vertex,
			Pixel:    rec.pixel,
		})
		off = next
	}
	return shaders, nil
}

// Unpack decodes a container and stores every blob through sink under its
// derived file name ({safe}_vs.fxc / {safe}_ps.fxc). It returns the sidecar
// index describing what was extracted, in container order; callers persist
// it as IndexFileName so the directory can be repacked later.
//
// Entries whose names sanitize to the same safe name reuse the same blob
// file names; later blobs overwrite earlier ones in the sink.
func Unpack(data []byte, sink BlobSink, opts ...ReadOption) (*Index, error) {
	shaders, err := Decode(data, opts...)
	if err != nil {
		return nil, err
	}
	idx := &Index{Shaders: []Entry{}, Info: indexInfo}
	for _, sh := range shaders {
		vsName := VertexFileName(sh.Name)
		psName := PixelFileName(sh.Name)
		if err := sink(vsName, sh.Vertex); err != nil {
			return nil, fmt.Errorf("fsop: store %s: %w", vsName, err)
		}
		if err := sink(psName, sh.Pixel); err != nil {
			return nil, fmt.Errorf("fsop: store %s: %w", psName, err)
		}
		idx.Shaders = append(idx.Shaders, Entry{
			Name:       sh.Name,
			Encoding:   sh.Encoding,
			VertexFile: vsName,
			PixelFile:  psName,
		})
	}
	return idx, nil
}
