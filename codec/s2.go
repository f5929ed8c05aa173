package codec

import (
	"fmt"

	"github.com/klauspost/compress/s2"
)

// S2 packs ids as a uvarint stream compressed with an S2 block.
//
// S2 is the default: interned ids are small and repetitive, which block
// compression exploits well at negligible CPU cost.
type S2 struct{}

// Encode implements Codec.
func (S2) Encode(ids []uint64) ([]byte, error) {
	return s2.Encode(nil, packUvarint(ids)), nil
}

// Decode implements Codec.
func (S2) Decode(data []byte) ([]uint64, error) {
	// The block header's decompressed size is untrusted; check it before
	// s2.Decode sizes an allocation from it.
	dLen, err := s2.DecodedLen(data)
	if err != nil {
		return nil, fmt.Errorf("codec s2: %w", err)
	}
	if dLen < 0 || dLen > maxDecodedLen {
		return nil, ErrBlockTooLarge
	}

	raw, err := s2.Decode(nil, data)
	if err != nil {
		return nil, fmt.Errorf("codec s2: %w", err)
	}
	return unpackUvarint(raw)
}

// Name implements Codec.
func (S2) Name() string { return "s2" }
