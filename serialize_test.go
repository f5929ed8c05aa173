package docgo

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/docgo/codec"
	"github.com/hupe1980/docgo/vocab"
)

func TestSerialize_RoundTrip(t *testing.T) {
	for _, c := range []codec.Codec{codec.Raw{}, codec.S2{}, codec.LZ4{}} {
		t.Run(c.Name(), func(t *testing.T) {
			v := vocab.New(vocab.WithCodec(c))
			d := makeDoc(v, "The quick brown fox jumps over the lazy dog")

			data, err := d.ToBytes()
			require.NoError(t, err)

			got, err := FromBytes(v, data)
			require.NoError(t, err)

			require.Equal(t, d.Len(), got.Len())
			assert.Equal(t, d.Text(), got.Text())
			for i := 0; i < d.Len(); i++ {
				assert.Equal(t, d.rec(i).Lex.Orth, got.rec(i).Lex.Orth, "token %d", i)
				assert.Equal(t, d.rec(i).Spacy, got.rec(i).Spacy, "token %d", i)
				assert.Equal(t, d.rec(i).Idx, got.rec(i).Idx, "token %d", i)
			}
		})
	}
}

func TestSerialize_RoundTripAcrossGrowth(t *testing.T) {
	v := vocab.New()
	d := New(v, WithCapacity(1))
	for i := 0; i < 100; i++ {
		d.PushBack(v.Lookup("tok"), i%3 != 0)
	}

	data, err := d.ToBytes()
	require.NoError(t, err)
	got, err := FromBytes(v, data)
	require.NoError(t, err)

	assert.Equal(t, d.Text(), got.Text())
	assert.Equal(t, 100, got.Len())
}

func TestSerialize_Empty(t *testing.T) {
	v := vocab.New()
	d := New(v)

	data, err := d.ToBytes()
	require.NoError(t, err)
	got, err := FromBytes(v, data)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Len())
	assert.Equal(t, "", got.Text())
}

func TestSerialize_AnnotationsNotCarried(t *testing.T) {
	v := vocab.New()
	d, _ := parsedDoc(t, v)

	data, err := d.ToBytes()
	require.NoError(t, err)
	got, err := FromBytes(v, data)
	require.NoError(t, err)

	assert.False(t, got.Parsed())
	for i := 0; i < got.Len(); i++ {
		assert.Equal(t, uint64(0), got.rec(i).Dep)
		assert.Equal(t, 0, got.rec(i).Head)
	}
}

func TestSerialize_Truncated(t *testing.T) {
	v := vocab.New()
	d := makeDoc(v, "one two three four five")

	data, err := d.ToBytes()
	require.NoError(t, err)

	var malformed *ErrMalformedInput
	for _, cut := range []int{0, 1, 3, len(data) / 2, len(data) - 1} {
		_, err := FromBytes(v, data[:cut])
		require.Error(t, err, "cut at %d", cut)
		assert.ErrorAs(t, err, &malformed, "cut at %d", cut)
	}
}

func TestSerialize_UnknownCodec(t *testing.T) {
	v := vocab.New()
	d := makeDoc(v, "a b")

	data, err := d.ToBytes()
	require.NoError(t, err)

	// The codec name sits right behind the wire version; "s2" -> "??".
	data[2], data[3] = '?', '?'
	_, err = FromBytes(v, data)
	var malformed *ErrMalformedInput
	require.ErrorAs(t, err, &malformed)
}

func TestSerialize_HostileIDCount(t *testing.T) {
	v := vocab.New()

	// A hand-built document whose raw-codec id block announces far more ids
	// than any input could carry. Must come back as a decode error, not a
	// runtime panic from an oversized allocation.
	idBlock := binary.AppendUvarint(nil, uint64(1)<<62)
	data := binary.AppendUvarint(nil, wireVersion)
	data = binary.AppendUvarint(data, 3)
	data = append(data, "raw"...)
	data = binary.AppendUvarint(data, 2) // token count
	data = binary.AppendUvarint(data, uint64(len(idBlock)))
	data = append(data, idBlock...)
	data = binary.AppendUvarint(data, 0) // empty whitespace bitmap

	_, err := FromBytes(v, data)
	var malformed *ErrMalformedInput
	require.ErrorAs(t, err, &malformed)
	assert.ErrorIs(t, err, codec.ErrShortStream)
}

func TestSerialize_ForeignVocab(t *testing.T) {
	v := vocab.New()
	d := makeDoc(v, "hapax legomenon")

	data, err := d.ToBytes()
	require.NoError(t, err)

	// A fresh vocabulary has no lexemes behind the serialized ids.
	_, err = FromBytes(vocab.New(), data)
	var malformed *ErrMalformedInput
	require.ErrorAs(t, err, &malformed)
}

func BenchmarkToBytes(b *testing.B) {
	v := vocab.New()
	d := New(v, WithCapacity(4096))
	words := []string{"the", "quick", "brown", "fox", "jumps"}
	for i := 0; i < 4096; i++ {
		d.PushBack(v.Lookup(words[i%len(words)]), true)
	}

	b.ReportAllocs()
	for b.Loop() {
		if _, err := d.ToBytes(); err != nil {
			b.Fatal(err)
		}
	}
}
