// Package fsop implements the FSOP shader container format used by FOX
// Engine titles (.fsop files).
//
// An FSOP file is a plain concatenation of shader records with no file
// header, no record count, and no trailer. Each record holds one named pair
// of shader blobs (a vertex program and a pixel program):
//
//	u8              name_length
//	u8[name_length] name bytes (per-entry text encoding, NUL-terminated)
//	u32le           vertex_size
//	u8[vertex_size] vertex bytes XOR 0x9C
//	u32le           pixel_size
//	u8[pixel_size]  pixel bytes XOR 0x9C
//
// End of buffer is the only terminator; a buffer that is not an exact sum of
// record lengths is malformed.
//
// # Text Encodings
//
// Record names carry no encoding marker. Names are decoded through a
// fallback chain (Shift-JIS, then UTF-8, then Latin-1, which accepts any
// byte sequence) and the encoding a name round-trips under is recorded as a
// per-entry tag so repacking can reproduce the original bytes. Pure-ASCII
// names are identical under all three encodings.
//
// # Basic Usage
//
// To unpack a container into blob files plus an editable sidecar index:
//
//	data, _ := os.ReadFile("shaders.fsop")
//	idx, err := fsop.Unpack(data, func(name string, blob []byte) error {
//		return os.WriteFile(filepath.Join(dir, name), blob, 0o644)
//	})
//
// To repack, reconcile the index against the directory listing and encode:
//
//	fsop.Reconcile(idx, names)
//	var buf bytes.Buffer
//	res, err := fsop.Encode(&buf, idx, func(name string) ([]byte, error) {
//		return os.ReadFile(filepath.Join(dir, name))
//	})
//
// Entry order in the index determines record order in the container and must
// be preserved for a byte-identical repack.
//
// # Security Considerations
//
// The XOR layer is obfuscation, not encryption. Decoding enforces
// configurable [Limits] on entry count and blob size so a hostile container
// cannot force oversized allocations, and blob file references from the
// sidecar are rejected if they escape the extraction directory.
package fsop
