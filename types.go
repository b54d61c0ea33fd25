package fsop

// xorKey obfuscates every shader payload. XOR is its own inverse, so the
// same transform packs and unpacks.
const xorKey = 0x9C

// maxNameLength is the largest encoded name the 1-byte length field can
// describe.
const maxNameLength = 255

// Encoding tags the text encoding of an entry name as stored on disk.
type Encoding string

const (
	// EncodingShiftJIS is the legacy single-byte/double-byte encoding most
	// original containers use. It is the default when the sidecar omits a tag.
	EncodingShiftJIS Encoding = "shift-jis"
	// EncodingUTF8 is the universal encoding; also the tag for pure-ASCII
	// names, which are byte-identical under all three encodings.
	EncodingUTF8 Encoding = "utf-8"
	// EncodingLatin1 maps every byte value to a rune and never fails to
	// decode. Last-resort tag for names that are not valid under the others.
	EncodingLatin1 Encoding = "latin-1"
)

// IndexFileName is the sidecar index written next to extracted blobs.
const IndexFileName = "metadata.json"

const (
	// DefaultBlobExt is the extension for extracted shader blob files.
	DefaultBlobExt = ".fxc"

	vertexSuffix = "_vs"
	pixelSuffix  = "_ps"
)

// Entry is one record of the sidecar index: a named vertex/pixel blob pair.
//
// Name is the raw name as decoded from the container, including the logical
// NUL terminator and any embedded control characters. Encoding may be empty
// in a hand-edited sidecar; packing then assumes EncodingShiftJIS.
// VertexFile and PixelFile are blob references, interpreted by the host as
// file names relative to the extraction directory.
type Entry struct {
	Name       string   `json:"name"`
	Encoding   Encoding `json:"encoding,omitempty"`
	VertexFile string   `json:"vertex_shader_file"`
	PixelFile  string   `json:"pixel_shader_file"`
}

// Index is the persisted, human-editable sidecar. Shader order determines
// record order in the repacked container.
type Index struct {
	Shaders []Entry `json:"shaders"`
	Info    string  `json:"_info,omitempty"`
}

// Shader is one fully decoded record: name, encoding bookkeeping, and both
// plaintext (de-obfuscated) blobs.
type Shader struct {
	Name     string
	Encoding Encoding
	Vertex   []byte
	Pixel    []byte
}

// BlobSource resolves a blob reference to its bytes at pack time.
// Returning an error marks the blob missing; the owning entry is skipped.
type BlobSource func(name string) ([]byte, error)

// BlobSink stores one extracted blob at unpack time.
type BlobSink func(name string, data []byte) error

// Skip records one entry left out of a pack and why.
type Skip struct {
	Index  int
	Name   string
	Reason string
}

// PackResult reports how much of an index actually made it into the
// container. Packed < Total means some entries were skipped; Skipped lists
// them. A partial pack is not an error.
type PackResult struct {
	Packed  int
	Total   int
	Skipped []Skip
}

// Warning is a non-fatal diagnostic surfaced through WithWarnings.
type Warning struct {
	Entry  int
	Name   string
	Detail string
}
