package docgo

import (
	"encoding/binary"

	"github.com/bits-and-blooms/bitset"

	"github.com/hupe1980/docgo/codec"
	"github.com/hupe1980/docgo/vocab"
)

// wireVersion identifies the document wire format. Bump on any layout change.
const wireVersion = 1

// ToBytes serializes the document's surface-form sequence: a self-describing
// header (wire version, codec name, token count), the codec-compressed
// ordered orth-id sequence, and exactly d.Len() whitespace bits in token
// order. Annotations are not part of this wire format.
//
// The bytes only decode against the same shared vocabulary instance (or one
// with an identical interning history).
func (d *Doc) ToBytes() ([]byte, error) {
	c := d.vocab.Codec()

	ids := make([]uint64, d.length)
	spaces := bitset.New(uint(d.length))
	for i := 0; i < d.length; i++ {
		r := d.rec(i)
		ids[i] = uint64(r.Lex.Orth)
		if r.Spacy {
			spaces.Set(uint(i))
		}
	}

	encoded, err := c.Encode(ids)
	if err != nil {
		return nil, err
	}
	bits, err := spaces.MarshalBinary()
	if err != nil {
		return nil, err
	}

	name := c.Name()
	buf := make([]byte, 0, len(name)+len(encoded)+len(bits)+4*binary.MaxVarintLen64)
	buf = binary.AppendUvarint(buf, wireVersion)
	buf = binary.AppendUvarint(buf, uint64(len(name)))
	buf = append(buf, name...)
	buf = binary.AppendUvarint(buf, uint64(d.length))
	buf = binary.AppendUvarint(buf, uint64(len(encoded)))
	buf = append(buf, encoded...)
	buf = binary.AppendUvarint(buf, uint64(len(bits)))
	buf = append(buf, bits...)
	return buf, nil
}

// FromBytes reconstructs a fresh document from data against the shared
// vocabulary v, replaying PushBack for each (lexeme, whitespace) pair.
// A shorter-than-announced input is a fatal malformed-input condition.
func FromBytes(v *vocab.Vocab, data []byte) (*Doc, error) {
	version, data, err := readUvarint(data, "wire version")
	if err != nil {
		return nil, err
	}
	if version != wireVersion {
		return nil, &ErrMalformedInput{Reason: "unsupported wire version"}
	}

	nameBytes, data, err := readBlock(data, "codec name")
	if err != nil {
		return nil, err
	}
	c, ok := codec.ByName(string(nameBytes))
	if !ok {
		return nil, &ErrMalformedInput{Reason: "unknown codec " + string(nameBytes)}
	}

	count, data, err := readUvarint(data, "token count")
	if err != nil {
		return nil, err
	}

	encoded, data, err := readBlock(data, "id block")
	if err != nil {
		return nil, err
	}
	ids, err := c.Decode(encoded)
	if err != nil {
		return nil, &ErrMalformedInput{Reason: "id block does not decode", cause: err}
	}
	if uint64(len(ids)) != count {
		return nil, &ErrMalformedInput{Reason: "id count does not match header"}
	}

	bits, _, err := readBlock(data, "whitespace bitmap")
	if err != nil {
		return nil, err
	}
	spaces := bitset.New(uint(count))
	if err := spaces.UnmarshalBinary(bits); err != nil {
		return nil, &ErrMalformedInput{Reason: "whitespace bitmap does not decode", cause: err}
	}
	if spaces.Len() < uint(count) {
		return nil, &ErrMalformedInput{Reason: "fewer whitespace bits than tokens"}
	}

	d := New(v, WithCapacity(int(count)))
	for i, id := range ids {
		lex, ok := v.LookupID(vocab.Symbol(id))
		if !ok {
			return nil, &ErrMalformedInput{Reason: "orth id not present in vocabulary"}
		}
		d.PushBack(lex, spaces.Test(uint(i)))
	}
	return d, nil
}

func readUvarint(data []byte, what string) (uint64, []byte, error) {
	v, n := binary.Uvarint(data)
	if n <= 0 {
		return 0, nil, &ErrMalformedInput{Reason: "truncated " + what}
	}
	return v, data[n:], nil
}

func readBlock(data []byte, what string) ([]byte, []byte, error) {
	size, data, err := readUvarint(data, what)
	if err != nil {
		return nil, nil, err
	}
	if uint64(len(data)) < size {
		return nil, nil, &ErrMalformedInput{Reason: "truncated " + what}
	}
	return data[:size], data[size:], nil
}
