package docgo

import "strings"

// Merge collapses the token run whose character span is exactly
// [startChar, endChar) into a single token, re-interning the merged surface
// text and installing the supplied tag, lemma, and entity type (0 for no
// entity) on the merged token.
//
// The dependency tree's external connectivity is preserved: every token
// outside the span that pointed at a governor outside the span still points
// at the same governor afterwards, and tokens that attached inside the span
// re-attach to the merged token. Among multiple span tokens attaching to
// different external governors, the numerically greatest (head index,
// dependency label) pair wins — a deliberate, documented tie-break.
//
// If no token aligns exactly with startChar and endChar, Merge is a no-op
// and returns (nil, false); no partial merge is ever left visible.
func (d *Doc) Merge(startChar, endChar int, tag, lemma, entType uint64) (*Token, bool) {
	start, end := -1, -1
	for i := 0; i < d.length; i++ {
		r := d.rec(i)
		if r.Idx == startChar {
			start = i
		}
		if r.Idx+r.Lex.Length == endChar {
			end = i + 1
		}
	}
	if start < 0 || end <= start {
		return nil, false
	}

	// Re-intern the merged surface text. Built from the span's lexemes so
	// the result is byte-identical to the text slice [startChar, endChar).
	var sb strings.Builder
	for i := start; i < end; i++ {
		r := d.rec(i)
		sb.WriteString(r.Lex.Text())
		if r.Spacy && i < end-1 {
			sb.WriteByte(' ')
		}
	}
	merged := d.vocab.Lookup(sb.String())

	offset := (end - start) - 1

	// Phase boundary: relative -> absolute heads, whole buffer.
	for i := 0; i < d.length; i++ {
		d.rec(i).Head += i
	}

	// Find the merged token's external attachment. For each span token,
	// walk up through ancestors that are themselves inside the span; a walk
	// that reaches a span-internal root yields no candidate.
	extHead, extDep := -1, uint64(0)
	for i := start; i < end; i++ {
		h := d.rec(i).Head
		steps := 0
		for h >= start && h < end && d.rec(h).Head != h {
			h = d.rec(h).Head
			if steps++; steps > d.length {
				break // malformed cycle
			}
		}
		if h < start || h >= end {
			if dep := d.rec(i).Dep; h > extHead || (h == extHead && dep > extDep) {
				extHead, extDep = h, dep
			}
		}
	}
	if extHead < 0 {
		// The span dominates the tree root: the merged token becomes root,
		// inheriting the internal root's label.
		extHead, extDep = start, 0
		for i := start; i < end; i++ {
			if d.rec(i).Head == i {
				extDep = d.rec(i).Dep
				break
			}
		}
	}

	home := d.rec(start)
	home.Lex = merged
	home.Spacy = d.rec(end - 1).Spacy
	home.Tag = tag
	home.Lemma = lemma
	home.Dep = extDep
	home.Head = extHead
	home.EntType = entType
	if entType != 0 {
		home.EntIOB = IOBBegin
	} else {
		home.EntIOB = IOBNone
	}

	// Re-point heads that fell inside the span to the merged token; shift
	// heads past the span down by the upcoming compaction offset.
	for i := 0; i < d.length; i++ {
		r := d.rec(i)
		switch {
		case r.Head >= start && r.Head < end:
			r.Head = start
		case r.Head >= end:
			r.Head -= offset
		}
	}

	// Compact and back-fill the unused tail with sentinels.
	for i := end; i < d.length; i++ {
		*d.rec(i - offset) = *d.rec(i)
	}
	oldLength := d.length
	d.length -= offset
	d.fillSentinel(Padding+d.length, Padding+oldLength)

	// Phase boundary: absolute -> relative heads.
	for i := 0; i < d.length; i++ {
		d.rec(i).Head -= i
	}

	d.tagged = true
	d.invalidate()
	return d.view(start), true
}
