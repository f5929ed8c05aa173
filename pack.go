package docgo

import (
	"runtime"

	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/docgo/attrs"
	"github.com/hupe1980/docgo/vocab"
)

// packAttrs is the writable annotation schema carried for every packed
// document, restored through FromArray on decode.
var packAttrs = []attrs.ID{
	attrs.Tag, attrs.Pos, attrs.Lemma, attrs.Dep,
	attrs.Head, attrs.EntIOB, attrs.EntType, attrs.SentStart,
}

type packFile struct {
	Version uint64     `msgpack:"version"`
	Schema  []attrs.ID `msgpack:"schema"`
	Docs    []packDoc  `msgpack:"docs"`
}

type packDoc struct {
	Core  []byte     `msgpack:"core"`
	Attrs [][]uint64 `msgpack:"attrs"`
}

// Pack bundles multiple documents for storage or transport. Unlike ToBytes,
// a pack carries each document's annotation table alongside its surface
// form, so tags, dependencies, and entities survive the round trip.
//
// All packed documents must share one vocabulary, and unpacking requires
// that same shared vocabulary.
type Pack struct {
	docs []*Doc
}

// NewPack creates a pack over the given documents.
func NewPack(docs ...*Doc) *Pack {
	return &Pack{docs: docs}
}

// Add appends a document to the pack.
func (p *Pack) Add(d *Doc) {
	p.docs = append(p.docs, d)
}

// Len returns the number of packed documents.
func (p *Pack) Len() int { return len(p.docs) }

// ToBytes serializes the pack.
func (p *Pack) ToBytes() ([]byte, error) {
	pf := packFile{
		Version: wireVersion,
		Schema:  packAttrs,
		Docs:    make([]packDoc, len(p.docs)),
	}
	for i, d := range p.docs {
		core, err := d.ToBytes()
		if err != nil {
			return nil, err
		}
		pf.Docs[i] = packDoc{Core: core, Attrs: d.ToArray(packAttrs)}
	}
	return msgpack.Marshal(pf)
}

// UnpackBytes reconstructs all packed documents against the shared
// vocabulary v. Documents decode concurrently; vocabulary reads are safe for
// concurrent use.
func UnpackBytes(v *vocab.Vocab, data []byte) ([]*Doc, error) {
	var pf packFile
	if err := msgpack.Unmarshal(data, &pf); err != nil {
		return nil, &ErrMalformedInput{Reason: "pack envelope does not decode", cause: err}
	}
	if pf.Version != wireVersion {
		return nil, &ErrMalformedInput{Reason: "unsupported pack version"}
	}

	docs := make([]*Doc, len(pf.Docs))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range pf.Docs {
		g.Go(func() error {
			d, err := FromBytes(v, pf.Docs[i].Core)
			if err != nil {
				return err
			}
			if err := d.FromArray(pf.Schema, pf.Docs[i].Attrs); err != nil {
				return err
			}
			docs[i] = d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}
