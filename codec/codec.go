// Package codec centralizes the compression of token id sequences.
//
// Docgo intentionally treats codec selection as a breaking-change boundary:
// if you change codecs, serialized documents created by older codecs may no
// longer decode. The document wire format stores the codec name in its
// header, so decoding is self-describing via ByName.
package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
)

var (
	// ErrShortStream is returned when an id stream ends before the announced count.
	ErrShortStream = errors.New("codec: short id stream")
	// ErrBlockTooLarge is returned when a block header announces a
	// decompressed size beyond the decoder's limit.
	ErrBlockTooLarge = errors.New("codec: announced block size too large")
)

// maxDecodedLen caps the decompressed size a block header may announce.
// Headers are untrusted input: without the cap, a crafted block could drive
// a giant allocation before any decompression runs.
const maxDecodedLen = 1 << 30

// Codec encodes/decodes ordered id sequences.
// Implementations must be safe for concurrent use and must guarantee
// Decode(Encode(ids)) == ids.
type Codec interface {
	Encode(ids []uint64) ([]byte, error)
	Decode(data []byte) ([]uint64, error)
	Name() string
}

// Default is the codec used when none is configured.
var Default Codec = S2{}

// ByName returns a built-in codec by its stable name.
//
// This is used by the self-describing document wire format, which stores the
// codec name in its header.
func ByName(name string) (Codec, bool) {
	switch name {
	case "raw":
		return Raw{}, true
	case "s2":
		return S2{}, true
	case "lz4":
		return LZ4{}, true
	default:
		return nil, false
	}
}

// MustEncode is a helper for internal tests/benchmarks.
func MustEncode(c Codec, ids []uint64) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Encode(ids)
	if err != nil {
		panic(fmt.Errorf("codec %s encode failed: %w", c.Name(), err))
	}
	return b
}

// packUvarint writes a count-prefixed uvarint stream.
func packUvarint(ids []uint64) []byte {
	buf := make([]byte, 0, 2*len(ids)+binary.MaxVarintLen64)
	buf = binary.AppendUvarint(buf, uint64(len(ids)))
	for _, id := range ids {
		buf = binary.AppendUvarint(buf, id)
	}
	return buf
}

func unpackUvarint(data []byte) ([]uint64, error) {
	count, n := binary.Uvarint(data)
	if n <= 0 {
		return nil, ErrShortStream
	}
	data = data[n:]

	// The count is untrusted; every id occupies at least one byte, so a
	// count beyond the remaining bytes can never be satisfied.
	if count > uint64(len(data)) {
		return nil, ErrShortStream
	}

	ids := make([]uint64, 0, count)
	for range count {
		v, n := binary.Uvarint(data)
		if n <= 0 {
			return nil, ErrShortStream
		}
		data = data[n:]
		ids = append(ids, v)
	}
	return ids, nil
}
