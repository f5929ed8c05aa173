package codec

import (
	"encoding/binary"
	"fmt"

	"github.com/pierrec/lz4/v4"
)

// LZ4 packs ids as a uvarint stream compressed with an LZ4 block.
//
// The frame is: uvarint(rawLen), one marker byte (0 = stored, 1 = lz4
// block), payload. Incompressible streams are stored as-is.
type LZ4 struct{}

// Encode implements Codec.
func (LZ4) Encode(ids []uint64) ([]byte, error) {
	raw := packUvarint(ids)
	out := binary.AppendUvarint(nil, uint64(len(raw)))

	var c lz4.Compressor
	block := make([]byte, lz4.CompressBlockBound(len(raw)))
	n, err := c.CompressBlock(raw, block)
	if err != nil {
		return nil, fmt.Errorf("codec lz4: %w", err)
	}
	if n == 0 || n >= len(raw) {
		// Incompressible
		out = append(out, 0)
		return append(out, raw...), nil
	}
	out = append(out, 1)
	return append(out, block[:n]...), nil
}

// Decode implements Codec.
func (LZ4) Decode(data []byte) ([]uint64, error) {
	rawLen, n := binary.Uvarint(data)
	if n <= 0 || n >= len(data) {
		return nil, ErrShortStream
	}
	if rawLen > maxDecodedLen {
		return nil, ErrBlockTooLarge
	}
	marker := data[n]
	data = data[n+1:]

	switch marker {
	case 0:
		return unpackUvarint(data)
	case 1:
		raw := make([]byte, rawLen)
		if _, err := lz4.UncompressBlock(data, raw); err != nil {
			return nil, fmt.Errorf("codec lz4: %w", err)
		}
		return unpackUvarint(raw)
	default:
		return nil, fmt.Errorf("codec lz4: unknown block marker %d", marker)
	}
}

// Name implements Codec.
func (LZ4) Name() string { return "lz4" }
