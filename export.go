package docgo

import "github.com/hupe1980/docgo/attrs"

// ToArray produces a dense table of d.Len() rows by len(ids) columns, where
// row i, column j holds the value of attribute ids[j] on token i. The result
// does not alias the buffer. Unknown attribute ids yield zero columns.
func (d *Doc) ToArray(ids []attrs.ID) [][]uint64 {
	rows := make([][]uint64, d.length)
	for i := range rows {
		r := d.rec(i)
		row := make([]uint64, len(ids))
		for j, id := range ids {
			row[j] = getAttr(r, id)
		}
		rows[i] = row
	}
	return rows
}

// FromArray bulk-applies annotation columns produced by ToArray (or an
// external annotator) back onto the document. Only writable token-level
// attributes are applied; lexeme-level and unknown columns are ignored.
// Head columns are interpreted as two's-complement signed offsets.
//
// Applying a Tag, Pos, or Lemma column marks the document tagged; applying
// Head or Dep marks it parsed.
func (d *Doc) FromArray(ids []attrs.ID, rows [][]uint64) error {
	if len(rows) != d.length {
		return &ErrLengthMismatch{Want: d.length, Got: len(rows)}
	}
	for i, row := range rows {
		if len(row) != len(ids) {
			return &ErrLengthMismatch{Want: len(ids), Got: len(row)}
		}
		r := d.rec(i)
		for j, id := range ids {
			v := row[j]
			switch id {
			case attrs.Tag:
				r.Tag = v
			case attrs.Pos:
				r.Pos = v
			case attrs.Lemma:
				r.Lemma = v
			case attrs.Dep:
				r.Dep = v
			case attrs.Head:
				r.Head = int(int64(v))
			case attrs.EntIOB:
				r.EntIOB = int(v)
			case attrs.EntType:
				r.EntType = v
			case attrs.SentStart:
				r.SentStart = v != 0
			}
		}
	}
	for _, id := range ids {
		switch id {
		case attrs.Tag, attrs.Pos, attrs.Lemma:
			d.tagged = true
		case attrs.Head, attrs.Dep:
			d.parsed = true
		}
	}
	return nil
}

// CountBy returns the occurrence count of each distinct value of the given
// attribute across all tokens. If exclude is non-nil, it is invoked per
// token view and matching tokens are skipped.
func (d *Doc) CountBy(id attrs.ID, exclude func(*Token) bool) map[uint64]int {
	counts := make(map[uint64]int)
	for i := 0; i < d.length; i++ {
		if exclude != nil && exclude(d.view(i)) {
			continue
		}
		counts[getAttr(d.rec(i), id)]++
	}
	return counts
}
