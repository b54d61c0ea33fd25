// Package main provides C-compatible exports for the fsop library.
// Build with: go build -buildmode=c-shared -o fsop.dll
package main

/*
#include <stdlib.h>
#include <stdint.h>

// Result structure for operations that return data
typedef struct {
    char* data;
    int   data_len;
    char* error;
} FsopResult;
*/
import "C"

import (
	"bytes"
	"errors"
	"unsafe"

	fsop "github.com/logicossoftware/go-fsop"
)

func main() {}

// Shader stage selectors for FsopGetShaderBlob.
const (
	stageVertex = 0
	stagePixel  = 1
)

// FsopFreeResult frees memory allocated by other Fsop functions.
// Must be called to avoid memory leaks.
//
//export FsopFreeResult
func FsopFreeResult(result C.FsopResult) {
	if result.data != nil {
		C.free(unsafe.Pointer(result.data))
	}
	if result.error != nil {
		C.free(unsafe.Pointer(result.error))
	}
}

// FsopFreeString frees a C string allocated by Go.
//
//export FsopFreeString
func FsopFreeString(s *C.char) {
	if s != nil {
		C.free(unsafe.Pointer(s))
	}
}

// makeResult creates a result with data.
func makeResult(data []byte) C.FsopResult {
	var result C.FsopResult
	if len(data) > 0 {
		result.data = (*C.char)(C.CBytes(data))
		result.data_len = C.int(len(data))
	}
	return result
}

// makeError creates a result with an error message.
func makeError(err error) C.FsopResult {
	var result C.FsopResult
	result.error = C.CString(err.Error())
	return result
}

// FsopDecodeIndex decodes an FSOP container and returns the sidecar index as
// JSON (the same structure Unpack writes as metadata.json).
// Parameters:
//   - data: pointer to container bytes
//   - dataLen: length of the data
//
// Returns FsopResult with JSON or error. Call FsopFreeResult when done.
//
//export FsopDecodeIndex
func FsopDecodeIndex(data *C.char, dataLen C.int) C.FsopResult {
	goData := C.GoBytes(unsafe.Pointer(data), dataLen)

	idx, err := fsop.Unpack(goData, func(string, []byte) error { return nil })
	if err != nil {
		return makeError(err)
	}
	jsonBytes, err := idx.MarshalPretty()
	if err != nil {
		return makeError(err)
	}
	return makeResult(jsonBytes)
}

// FsopGetShaderBlob retrieves one de-obfuscated shader blob by safe name.
// Parameters:
//   - data: pointer to container bytes
//   - dataLen: length of the data
//   - name: the shader's safe (sanitized) name
//   - stage: 0 for the vertex program, 1 for the pixel program
//
// Returns FsopResult with blob bytes or error. Call FsopFreeResult when done.
//
//export FsopGetShaderBlob
func FsopGetShaderBlob(data *C.char, dataLen C.int, name *C.char, stage C.int) C.FsopResult {
	goData := C.GoBytes(unsafe.Pointer(data), dataLen)
	want := C.GoString(name)

	shaders, err := fsop.Decode(goData)
	if err != nil {
		return makeError(err)
	}
	for _, sh := range shaders {
		if fsop.SafeName(sh.Name) != want {
			continue
		}
		switch int(stage) {
		case stageVertex:
			return makeResult(sh.Vertex)
		case stagePixel:
			return makeResult(sh.Pixel)
		default:
			return makeError(errors.New("unknown shader stage"))
		}
	}
	return makeError(errors.New("shader not found: " + want))
}

// FsopShaderCount returns the number of shader records in a container.
// Returns -1 on error.
//
//export FsopShaderCount
func FsopShaderCount(data *C.char, dataLen C.int) C.int {
	goData := C.GoBytes(unsafe.Pointer(data), dataLen)
	shaders, err := fsop.Decode(goData)
	if err != nil {
		return -1
	}
	return C.int(len(shaders))
}

// FsopValidate checks that a container decodes cleanly.
// Returns NULL on success, or an error message string on failure.
// Call FsopFreeString on the result if non-NULL.
//
//export FsopValidate
func FsopValidate(data *C.char, dataLen C.int) *C.char {
	goData := C.GoBytes(unsafe.Pointer(data), dataLen)
	if _, err := fsop.Decode(goData); err != nil {
		return C.CString(err.Error())
	}
	return nil
}

// FsopPack encodes a container from an index JSON plus a flat blob table.
// Parameters:
//   - indexJSON: sidecar index as JSON (metadata.json contents)
//   - names: newline-separated blob file names, matching blobs order
//   - blobs: concatenated blob bytes
//   - blobLens: array of blob lengths, one per name
//   - blobCount: number of blobs
//
// Returns FsopResult with container bytes or error. Skipped entries are not
// reported through this interface; use the Go API for pack diagnostics.
//
//export FsopPack
func FsopPack(indexJSON *C.char, names *C.char, blobs *C.char, blobLens *C.int, blobCount C.int) C.FsopResult {
	idx, err := fsop.ParseIndex([]byte(C.GoString(indexJSON)))
	if err != nil {
		return makeError(err)
	}

	table := map[string][]byte{}
	if blobCount > 0 {
		nameList := bytes.Split([]byte(C.GoString(names)), []byte{'\n'})
		lens := unsafe.Slice(blobLens, int(blobCount))
		off := 0
		for i := 0; i < int(blobCount) && i < len(nameList); i++ {
			n := int(lens[i])
			table[string(nameList[i])] = C.GoBytes(unsafe.Add(unsafe.Pointer(blobs), off), C.int(n))
			off += n
		}
	}

	var buf bytes.Buffer
	_, err = fsop.Encode(&buf, idx, func(name string) ([]byte, error) {
		b, ok := table[name]
		if !ok {
			return nil, errors.New("blob not provided")
		}
		return b, nil
	})
	if err != nil {
		return makeError(err)
	}
	return makeResult(buf.Bytes())
}

// FsopXorTransform applies the container's XOR obfuscation to a buffer.
// The transform is its own inverse. Call FsopFreeResult when done.
//
//export FsopXorTransform
func FsopXorTransform(data *C.char, dataLen C.int) C.FsopResult {
	goData := C.GoBytes(unsafe.Pointer(data), dataLen)
	return makeResult(fsop.XorTransform(goData))
}
