package fsop

import (
	"bytes"
	"testing"
)

// Shift-JIS for シェーダ ("shader" in katakana).
var kanaShiftJIS = []byte{0x83, 0x56, 0x83, 0x46, 0x81, 0x5B, 0x83, 0x5F}

func TestDecodeNameShiftJIS(t *testing.T) {
	if got := decodeName(kanaShiftJIS); got != "シェーダ" {
		t.Fatalf("got %q, want %q", got, "シェーダ")
	}
}

func TestDecodeNameASCII(t *testing.T) {
	if got := decodeName([]byte("BasicLit\x00")); got != "BasicLit\x00" {
		t.Fatalf("got %q", got)
	}
}

func TestDecodeNameUTF8Fallback(t *testing.T) {
	// UTF-8 for あ: 0xE3 0x81 0x82. As Shift-JIS this ends on a dangling
	// lead byte, so the first probe fails and the UTF-8 probe wins.
	got := decodeName([]byte{0xE3, 0x81, 0x82})
	if got != "あ" {
		t.Fatalf("got %q, want %q", got, "あ")
	}
}

func TestDecodeNameLatin1LastResort(t *testing.T) {
	// 0xFF is invalid as Shift-JIS and as UTF-8; Latin-1 accepts anything.
	got := decodeName([]byte{0xFF, 0xFE})
	if got != "ÿþ" {
		t.Fatalf("got %q, want %q", got, "ÿþ")
	}
}

func TestDetectStoredEncoding(t *testing.T) {
	cases := []struct {
		name string
		want Encoding
	}{
		// Shift-JIS is tried first; ASCII always satisfies it.
		{"BasicLit\x00", EncodingShiftJIS},
		{"シェーダ", EncodingShiftJIS},
		// あ is representable in Shift-JIS even when the on-disk bytes were
		// UTF-8; the stored tag follows encodability, not the decode path.
		{"あ", EncodingShiftJIS},
		// Latin-1 text outside Shift-JIS gets the universal tag.
		{"ÿþ", EncodingUTF8},
	}
	for _, c := range cases {
		if got := detectStoredEncoding(c.name); got != c.want {
			t.Errorf("detectStoredEncoding(%q) = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestDetectEncoding(t *testing.T) {
	cases := []struct {
		name string
		want Encoding
	}{
		// Pure ASCII is byte-identical under every tag; use the universal one.
		{"BasicLit", EncodingUTF8},
		{"", EncodingUTF8},
		// Kana: 8 bytes as Shift-JIS vs 12 as UTF-8.
		{"シェーダ", EncodingShiftJIS},
		// Latin text with accents: 2 bytes as UTF-8, not in Shift-JIS.
		{"café", EncodingUTF8},
	}
	for _, c := range cases {
		if got := DetectEncoding(c.name); got != c.want {
			t.Errorf("DetectEncoding(%q) = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestEncodeNameStoredTag(t *testing.T) {
	b, used, err := encodeName("シェーダ", EncodingShiftJIS)
	if err != nil {
		t.Fatal(err)
	}
	if used != EncodingShiftJIS {
		t.Fatalf("used %q", used)
	}
	if !bytes.Equal(b, kanaShiftJIS) {
		t.Fatalf("got % X, want % X", b, kanaShiftJIS)
	}
}

func TestEncodeNameDefaultsToShiftJIS(t *testing.T) {
	b, used, err := encodeName("abc\x00", "")
	if err != nil {
		t.Fatal(err)
	}
	if used != EncodingShiftJIS {
		t.Fatalf("empty tag should default to shift-jis, used %q", used)
	}
	if !bytes.Equal(b, []byte("abc\x00")) {
		t.Fatalf("got % X", b)
	}
}

func TestEncodeNameFallback(t *testing.T) {
	// Stale latin-1 tag on a kana name: chain lands on Shift-JIS.
	b, used, err := encodeName("シェーダ", EncodingLatin1)
	if err != nil {
		t.Fatal(err)
	}
	if used != EncodingShiftJIS {
		t.Fatalf("used %q, want fallback to shift-jis", used)
	}
	if !bytes.Equal(b, kanaShiftJIS) {
		t.Fatalf("got % X", b)
	}
}

func TestEncodeNameLatin1RoundTrip(t *testing.T) {
	b, used, err := encodeName("ÿþ", EncodingLatin1)
	if err != nil {
		t.Fatal(err)
	}
	if used != EncodingLatin1 {
		t.Fatalf("used %q", used)
	}
	if !bytes.Equal(b, []byte{0xFF, 0xFE}) {
		t.Fatalf("got % X, want FF FE", b)
	}
	if got := decodeName(b); got != "ÿþ" {
		t.Fatalf("round trip gave %q", got)
	}
}
