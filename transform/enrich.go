package transform

import (
	"context"
	"fmt"

	places "github.com/heritagemaps/go-linked-places"
	"github.com/heritagemaps/go-linked-places/document"
	"github.com/heritagemaps/go-linked-places/tabular"
	"github.com/heritagemaps/go-linked-places/wikimedia"
	"github.com/tidwall/sjson"
)

// Enrichment applies one optional patch to a serialized feature, returning
// the body unchanged when the patch does not apply. Enrichments run in a
// fixed order so override semantics are explicit: a later patch wins over an
// earlier same-named field.
type Enrichment func(ctx context.Context, row tabular.Row, body []byte) ([]byte, error)

// enrichments returns the depictions, types and links patches, in that
// order.
func (tr *Transformer) enrichments() []Enrichment {

	return []Enrichment{
		tr.appendDepictions,
		tr.appendTypes,
		tr.appendLinks,
	}
}

// appendDepictions assigns a single Wikimedia Commons depiction when the
// row's image column is populated. The resolved URL doubles as both the
// identifier and the thumbnail reference.
func (tr *Transformer) appendDepictions(ctx context.Context, row tabular.Row, body []byte) ([]byte, error) {

	s := tr.dataset.Schema

	if s.Image == "" {
		return body, nil
	}

	name := row.Get(s.Image)

	if name == "" {
		return body, nil
	}

	u := wikimedia.ThumbnailURL(name, wikimedia.DEFAULT_WIDTH)

	depictions := []*document.Depiction{
		&document.Depiction{Id: u, Thumbnail: u},
	}

	body, err := sjson.SetBytes(body, "depictions", depictions)

	if err != nil {
		return nil, fmt.Errorf("Failed to assign depictions, %w", err)
	}

	return body, nil
}

// appendTypes assigns the types synthesized from the dataset's type-pair
// table. A pair contributes a type only when both of its columns are
// populated; no complete pair means no types key at all.
func (tr *Transformer) appendTypes(ctx context.Context, row tabular.Row, body []byte) ([]byte, error) {

	types := make([]*document.Type, 0)

	for _, p := range tr.dataset.TypePairs {

		id := row.Get(p.IdColumn)
		label := row.Get(p.LabelColumn)

		if id == "" || label == "" {
			continue
		}

		t := &document.Type{
			Identifier: p.URL + id,
			Label:      p.Label + label,
		}

		types = append(types, t)
	}

	if len(types) == 0 {
		return body, nil
	}

	body, err := sjson.SetBytes(body, "types", types)

	if err != nil {
		return nil, fmt.Errorf("Failed to assign types, %w", err)
	}

	return body, nil
}

// appendLinks assigns one seeAlso link per populated authority column,
// preserving the order of the dataset's authority table.
func (tr *Transformer) appendLinks(ctx context.Context, row tabular.Row, body []byte) ([]byte, error) {

	links := make([]*document.Link, 0)

	for _, a := range tr.dataset.Authorities {

		v := row.Get(a.Column)

		if v == "" {
			continue
		}

		l := &document.Link{
			Identifier: a.URL + v,
			Type:       places.SEE_ALSO,
			Label:      a.Label + v,
		}

		links = append(links, l)
	}

	if len(links) == 0 {
		return body, nil
	}

	body, err := sjson.SetBytes(body, "links", links)

	if err != nil {
		return nil, fmt.Errorf("Failed to assign links, %w", err)
	}

	return body, nil
}
