package fsop

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
)

// Name text handling. Container names carry no encoding marker, so both
// directions work through ordered fallback chains. The decode chain always
// succeeds (Latin-1 accepts any byte) at the cost of possibly
// misinterpreting garbage; the recorded tag keeps repacks byte-faithful.

// decodeProbes is the decode fallback chain, tried in order. Each probe
// reports whether its encoding can represent the input.
var decodeProbes = []func([]byte) (string, bool){
	decodeShiftJIS,
	decodeUTF8,
	decodeLatin1,
}

// decodeName decodes raw name bytes through the fallback chain. It cannot
// fail; the Latin-1 step accepts every byte sequence.
func decodeName(b []byte) string {
	for _, probe := range decodeProbes {
		if s, ok := probe(b); ok {
			return s
		}
	}
	s, _ := decodeLatin1(b)
	return s
}

// decodeShiftJIS reports failure when the decoder had to substitute U+FFFD:
// x/text decoders never error, but U+FFFD itself is not representable in
// Shift-JIS, so its presence means the input was not valid Shift-JIS.
func decodeShiftJIS(b []byte) (string, bool) {
	s, err := japanese.ShiftJIS.NewDecoder().Bytes(b)
	if err != nil || strings.ContainsRune(string(s), utf8.RuneError) {
		return "", false
	}
	return string(s), true
}

func decodeUTF8(b []byte) (string, bool) {
	if !utf8.Valid(b) {
		return "", false
	}
	return string(b), true
}

func decodeLatin1(b []byte) (string, bool) {
	s, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		// Latin-1 maps all 256 byte values; this cannot happen.
		return string(b), true
	}
	return string(s), true
}

// encodeAs encodes name under exactly the given tag.
func encodeAs(name string, tag Encoding) ([]byte, error) {
	switch tag {
	case EncodingShiftJIS:
		return japanese.ShiftJIS.NewEncoder().Bytes([]byte(name))
	case EncodingUTF8:
		if !utf8.ValidString(name) {
			return nil, fmt.Errorf("fsop: name is not valid UTF-8")
		}
		return []byte(name), nil
	case EncodingLatin1:
		return charmap.ISO8859_1.NewEncoder().Bytes([]byte(name))
	default:
		return nil, fmt.Errorf("%w: unknown encoding %q", ErrIncompleteEntry, tag)
	}
}

// encodeName encodes name under the entry's stored tag, falling back through
// Shift-JIS, UTF-8, then Latin-1 when the stored tag cannot represent it
// (stale or hand-edited metadata). It returns the bytes and the tag actually
// used so callers can report the fallback.
func encodeName(name string, tag Encoding) ([]byte, Encoding, error) {
	if tag == "" {
		tag = EncodingShiftJIS
	}
	if b, err := encodeAs(name, tag); err == nil {
		return b, tag, nil
	}
	for _, fb := range []Encoding{EncodingShiftJIS, EncodingUTF8, EncodingLatin1} {
		if fb == tag {
			continue
		}
		if b, err := encodeAs(name, fb); err == nil {
			return b, fb, nil
		}
	}
	return nil, "", fmt.Errorf("fsop: name %q not representable in any known encoding", name)
}

// detectStoredEncoding picks the tag recorded for a just-decoded name: the
// first of Shift-JIS, UTF-8, Latin-1 that can encode it. Resolved after,
// and independently of, the decode chain.
func detectStoredEncoding(name string) Encoding {
	for _, tag := range []Encoding{EncodingShiftJIS, EncodingUTF8, EncodingLatin1} {
		if _, err := encodeAs(name, tag); err == nil {
			return tag
		}
	}
	return EncodingLatin1
}

// DetectEncoding infers the most compact tag for a newly discovered shader
// name. Pure-ASCII names are tagged utf-8 since all three encodings agree on
// them. Otherwise Shift-JIS is preferred when it round-trips and is no
// larger than the UTF-8 form. This deliberately differs from the tag
// resolution used at decode time.
func DetectEncoding(name string) Encoding {
	if isASCII(name) {
		return EncodingUTF8
	}
	if sjis, err := encodeAs(name, EncodingShiftJIS); err == nil {
		if round, ok := decodeShiftJIS(sjis); ok && round == name {
			// len(name) is the UTF-8 byte length.
			if len(name) <= len(sjis) {
				return EncodingUTF8
			}
			return EncodingShiftJIS
		}
	}
	if utf8.ValidString(name) {
		return EncodingUTF8
	}
	return EncodingLatin1
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
