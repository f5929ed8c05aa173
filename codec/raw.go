package codec

// Raw packs ids as a count-prefixed uvarint stream without compression.
//
// Useful as a baseline and for short documents where block compression
// overhead outweighs its savings.
type Raw struct{}

// Encode implements Codec.
func (Raw) Encode(ids []uint64) ([]byte, error) {
	return packUvarint(ids), nil
}

// Decode implements Codec.
func (Raw) Decode(data []byte) ([]uint64, error) {
	return unpackUvarint(data)
}

// Name implements Codec.
func (Raw) Name() string { return "raw" }
