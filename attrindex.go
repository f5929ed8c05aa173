package docgo

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/docgo/attrs"
)

// AttrIndex is an inverted index over token attributes: for each indexed
// attribute id it maps every distinct value to the bitmap of token positions
// carrying it. It answers repeated count/position queries without rescanning
// the buffer.
//
// The index is keyed by token position and therefore snapshots the document
// at build time: once Merge or Grow bumps the document version, the index is
// stale and must be rebuilt.
type AttrIndex struct {
	doc     *Doc
	version uint64
	posting map[attrs.ID]map[uint64]*roaring.Bitmap
}

// NewAttrIndex builds an index over the given attribute ids.
func NewAttrIndex(d *Doc, ids ...attrs.ID) *AttrIndex {
	ai := &AttrIndex{
		doc:     d,
		version: d.Version(),
		posting: make(map[attrs.ID]map[uint64]*roaring.Bitmap, len(ids)),
	}
	for _, id := range ids {
		values := make(map[uint64]*roaring.Bitmap)
		ai.posting[id] = values
		for i := 0; i < d.length; i++ {
			v := getAttr(d.rec(i), id)
			bm := values[v]
			if bm == nil {
				bm = roaring.New()
				values[v] = bm
			}
			bm.Add(uint32(i))
		}
	}
	return ai
}

// Stale reports whether the document has structurally changed since the
// index was built.
func (ai *AttrIndex) Stale() bool {
	return ai.version != ai.doc.Version()
}

// Count returns how many tokens carry the given value for the attribute.
// Unindexed attributes and unseen values count zero.
func (ai *AttrIndex) Count(id attrs.ID, value uint64) int {
	values, ok := ai.posting[id]
	if !ok {
		return 0
	}
	bm, ok := values[value]
	if !ok {
		return 0
	}
	return int(bm.GetCardinality())
}

// Positions iterates the token positions carrying the given value, in index
// order.
func (ai *AttrIndex) Positions(id attrs.ID, value uint64) iter.Seq[int] {
	return func(yield func(int) bool) {
		values, ok := ai.posting[id]
		if !ok {
			return
		}
		bm, ok := values[value]
		if !ok {
			return
		}
		it := bm.Iterator()
		for it.HasNext() {
			if !yield(int(it.Next())) {
				return
			}
		}
	}
}
