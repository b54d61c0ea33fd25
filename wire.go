package fsop

import (
	"encoding/binary"
	"fmt"
)

// record is the wire-level view of one container record: the name still in
// its on-disk encoding, both blobs already de-obfuscated.
type record struct {
	nameBytes []byte
	vertex    []byte
	pixel     []byte
}

// XorTransform returns a copy of b with every byte XORed against the
// container's obfuscation key. The transform is an involution: applying it
// twice restores the input.
func XorTransform(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[i] = v ^ xorKey
	}
	return out
}

// readRecord decodes one record starting at off and returns it together with
// the offset of the next record. Any field running past the end of data is
// ErrTruncated; there is no way to resynchronize after that.
func readRecord(data []byte, off int) (record, int, error) {
	start := off
	if off >= len(data) {
		return record{}, 0, fmt.Errorf("%w: record at offset %d: name length", ErrTruncated, start)
	}
	nameLen := int(data[off])
	off++

	name, off, err := take(data, off, nameLen, start, "name")
	if err != nil {
		return record{}, 0, err
	}
	vsSize, off, err := readSize(data, off, start, "vertex size")
	if err != nil {
		return record{}, 0, err
	}
	vs, off, err := take(data, off, vsSize, start, "vertex data")
	if err != nil {
		return record{}, 0, err
	}
	psSize, off, err := readSize(data, off, start, "pixel size")
	if err != nil {
		return record{}, 0, err
	}
	ps, off, err := take(data, off, psSize, start, "pixel data")
	if err != nil {
		return record{}, 0, err
	}

	return record{
		nameBytes: name,
		vertex:    XorTransform(vs),
		pixel:     XorTransform(ps),
	}, off, nil
}

func take(data []byte, off, n, start int, field string) ([]byte, int, error) {
	if n < 0 || n > len(data)-off {
		return nil, 0, fmt.Errorf("%w: record at offset %d: %s", ErrTruncated, start, field)
	}
	return data[off : off+n], off + n, nil
}

func readSize(data []byte, off, start int, field string) (int, int, error) {
	b, off, err := take(data, off, 4, start, field)
	if err != nil {
		return 0, 0, err
	}
	return int(binary.LittleEndian.Uint32(b)), off, nil
}

// appendRecord serializes one record onto dst. nameBytes must already be in
// the entry's on-disk encoding; vertex and pixel are plaintext and get
// obfuscated here.
func appendRecord(dst []byte, rec record) ([]byte, error) {
	if len(rec.nameBytes) > maxNameLength {
		return nil, fmt.Errorf("%w: %d bytes", ErrNameTooLong, len(rec.nameBytes))
	}
	dst = append(dst, byte(len(rec.nameBytes)))
	dst = append(dst, rec.nameBytes...)
	dst = binary.LittleEndian.AppendUint32(dst, uint32(len(rec.vertex)))
	dst = append(dst, XorTransform(rec.vertex)...)
	dst = binary.LittleEndian.AppendUint32(dst, uint32(len(rec.pixel)))
	dst = append(dst, XorTransform(rec.pixel)...)
	return dst, nil
}
