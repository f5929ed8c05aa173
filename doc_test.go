package docgo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/docgo/vocab"
)

// makeDoc pushes whitespace-separated words; every token but the last gets a
// trailing space.
func makeDoc(v *vocab.Vocab, text string, opts ...Option) *Doc {
	d := New(v, opts...)
	words := strings.Fields(text)
	for i, w := range words {
		d.PushBack(v.Lookup(w), i < len(words)-1)
	}
	return d
}

func TestDoc_PushBack(t *testing.T) {
	v := vocab.New()
	d := New(v)

	end := d.PushBack(v.Lookup("Hello"), true)
	assert.Equal(t, 6, end)
	end = d.PushBack(v.Lookup("world"), false)
	assert.Equal(t, 11, end)

	assert.Equal(t, 2, d.Len())
	assert.Equal(t, "Hello world", d.Text())

	tok, err := d.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "Hello", tok.Text())
	assert.Equal(t, 0, tok.Idx())
	assert.True(t, tok.HasSpace())

	tok, err = d.Get(1)
	require.NoError(t, err)
	assert.Equal(t, 6, tok.Idx())
	assert.False(t, tok.HasSpace())
}

func TestDoc_IdxMonotonic(t *testing.T) {
	v := vocab.New()
	d := makeDoc(v, "one two three four five six seven eight nine ten")

	off := 0
	for i := 0; i < d.Len(); i++ {
		r := d.rec(i)
		assert.Equal(t, off, r.Idx, "token %d", i)
		off += r.Lex.Length + spaceLen(r.Spacy)
	}
	assert.Equal(t, 0, d.rec(0).Idx)
}

func TestDoc_GrowPreservesContent(t *testing.T) {
	v := vocab.New()
	d := New(v, WithCapacity(1))

	words := []string{"a", "bb", "ccc", "dddd", "eeeee", "ffffff", "g", "hh", "iii"}
	for i, w := range words {
		d.PushBack(v.Lookup(w), i < len(words)-1)
	}

	// Several doublings happened along the way.
	assert.GreaterOrEqual(t, d.Cap(), len(words))

	off := 0
	for i, w := range words {
		tok, err := d.Get(i)
		require.NoError(t, err)
		assert.Equal(t, w, tok.Text())
		assert.Equal(t, off, tok.Idx())
		off += tok.Lex().Length + spaceLen(tok.HasSpace())
	}
}

func TestDoc_GrowNeverShrinks(t *testing.T) {
	v := vocab.New()
	d := New(v, WithCapacity(16))
	d.Grow(4)
	assert.Equal(t, 16, d.Cap())
}

func TestDoc_GetBounds(t *testing.T) {
	v := vocab.New()
	d := makeDoc(v, "a b c")

	// Negative indices wrap.
	tok, err := d.Get(-1)
	require.NoError(t, err)
	assert.Equal(t, "c", tok.Text())

	// Padding window: sentinel data, no error.
	tok, err = d.Get(d.Len() + Padding - 1)
	require.NoError(t, err)
	assert.Equal(t, "", tok.Text())
	tok, err = d.Get(-d.Len() - Padding)
	require.NoError(t, err)
	assert.Equal(t, "", tok.Text())

	// Outside the window: rejected.
	_, err = d.Get(d.Len() + Padding)
	var oor *ErrIndexOutOfRange
	require.ErrorAs(t, err, &oor)
	assert.Equal(t, d.Len()+Padding, oor.Index)

	_, err = d.Get(-d.Len() - Padding - 1)
	assert.ErrorAs(t, err, &oor)
}

func TestDoc_PaddingSafety(t *testing.T) {
	v := vocab.New()
	d := New(v, WithCapacity(1))

	// Across every growth step, the whole padding-relative window must stay
	// dereferenceable.
	for n := 0; n < 20; n++ {
		for i := -Padding; i < d.Len()+Padding; i++ {
			r := d.rec(i)
			require.NotNil(t, r.Lex, "index %d at length %d", i, d.Len())
		}
		d.PushBack(v.Lookup("x"), true)
	}
}

func TestDoc_Iteration(t *testing.T) {
	v := vocab.New()
	d := makeDoc(v, "a b c d")

	var got []string
	for tok := range d.All() {
		got = append(got, tok.Text())
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, got)

	// Restartable.
	n := 0
	for range d.All() {
		n++
	}
	assert.Equal(t, 4, n)

	// Early break.
	n = 0
	for range d.All() {
		n++
		break
	}
	assert.Equal(t, 1, n)
}

func TestDoc_Slice(t *testing.T) {
	v := vocab.New()
	d := makeDoc(v, "a b c d e")

	s, err := d.Slice(1, 4)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, "b c d", s.Text())

	// Negative bounds wrap, out-of-range bounds clamp.
	s, err = d.Slice(-2, 100)
	require.NoError(t, err)
	assert.Equal(t, "d e", s.Text())

	s, err = d.Slice(3, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())

	_, err = d.SliceStep(0, 4, 2)
	assert.ErrorIs(t, err, ErrUnsupportedStep)

	s, err = d.SliceStep(0, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())
}

func TestDoc_SetParse(t *testing.T) {
	v := vocab.New()
	d := makeDoc(v, "She sleeps")

	nsubj := uint64(v.Intern("nsubj"))
	root := uint64(v.Intern("ROOT"))
	recs := []TokenRecord{
		{Lex: v.Lookup("She"), Spacy: true, Head: 1, Dep: nsubj, SentStart: true},
		{Lex: v.Lookup("sleeps"), Head: 0, Dep: root},
	}

	require.NoError(t, d.SetParse(recs))
	assert.True(t, d.Parsed())
	assert.True(t, d.Tagged())

	tok, _ := d.Get(0)
	assert.Equal(t, 1, tok.Head())
	assert.Equal(t, 0, tok.Idx())
	tok, _ = d.Get(1)
	assert.Equal(t, 4, tok.Idx())

	// All-or-nothing on length mismatch.
	err := d.SetParse(recs[:1])
	var lm *ErrLengthMismatch
	require.ErrorAs(t, err, &lm)
	assert.Equal(t, 2, lm.Want)
}

func TestDoc_ViewCacheInvalidation(t *testing.T) {
	v := vocab.New()
	d := makeDoc(v, "a b c")

	before := d.Version()
	t0, _ := d.Get(0)
	t0again, _ := d.Get(0)
	assert.Same(t, t0, t0again)

	d.Grow(64)
	assert.NotEqual(t, before, d.Version())

	fresh, _ := d.Get(0)
	assert.NotSame(t, t0, fresh)
}

func BenchmarkPushBack(b *testing.B) {
	v := vocab.New()
	lex := v.Lookup("token")

	b.ReportAllocs()
	for b.Loop() {
		d := New(v, WithCapacity(1024))
		for i := 0; i < 1024; i++ {
			d.PushBack(lex, true)
		}
	}
}
