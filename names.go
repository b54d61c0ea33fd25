package fsop

import "strings"

const invalidNameChars = `<>:"/\|?*`

// SafeName derives a filesystem-safe display name from a raw entry name:
// NULs removed, surrounding whitespace trimmed, Windows-reserved characters
// replaced with '_'. An empty result becomes "unnamed".
func SafeName(raw string) string {
	name := strings.ReplaceAll(raw, "\x00", "")
	name = strings.TrimSpace(name)
	name = strings.Map(func(r rune) rune {
		if strings.ContainsRune(invalidNameChars, r) {
			return '_'
		}
		return r
	}, name)
	if name == "" {
		return "unnamed"
	}
	return name
}

// VertexFileName is the blob file name a shader's vertex program is
// extracted to.
func VertexFileName(raw string) string {
	return SafeName(raw) + vertexSuffix + DefaultBlobExt
}

// PixelFileName is the blob file name a shader's pixel program is
// extracted to.
func PixelFileName(raw string) string {
	return SafeName(raw) + pixelSuffix + DefaultBlobExt
}
