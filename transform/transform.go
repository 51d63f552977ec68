// Package transform derives Linked Places documents from tabular place
// records. Each row transforms independently: a row either passes the
// locatedness gate and becomes a feature or is dropped cleanly, and no
// per-row defect ever aborts the run or affects sibling rows.
package transform

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	places "github.com/heritagemaps/go-linked-places"
	"github.com/heritagemaps/go-linked-places/dataset"
	"github.com/heritagemaps/go-linked-places/document"
	"github.com/heritagemaps/go-linked-places/tabular"
)

// Transformer derives Linked Places features for a single dataset variant.
type Transformer struct {
	dataset *dataset.Dataset
}

// NewTransformer returns a `Transformer` for the dataset definition 'ds'.
func NewTransformer(ctx context.Context, ds *dataset.Dataset) (*Transformer, error) {

	if ds == nil {
		return nil, fmt.Errorf("Missing dataset definition")
	}

	if ds.PlaceURI == "" {
		return nil, fmt.Errorf("Dataset '%s' is missing a place URI", ds.Name)
	}

	s := ds.Schema

	if s.Id == "" || s.Title == "" || s.Longitude == "" || s.Latitude == "" {
		return nil, fmt.Errorf("Dataset '%s' schema is missing one or more of its id, title, longitude or latitude columns", ds.Name)
	}

	tr := &Transformer{
		dataset: ds,
	}

	return tr, nil
}

// TransformTable derives the complete Linked Places document for 'tbl'.
// Rows that fail the locatedness gate or that can not satisfy the document
// invariants (a non-empty identifier and title, a parseable coordinate pair)
// are dropped; surviving features preserve input row order.
func (tr *Transformer) TransformTable(ctx context.Context, tbl *tabular.Table) ([]byte, error) {

	logger := slog.Default()

	fc := document.NewFeatureCollection(tr.dataset.Indexing)

	for i, row := range tbl.Rows {

		body, ok, err := tr.TransformRow(ctx, row)

		if err != nil {
			return nil, fmt.Errorf("Failed to transform row %d, %w", i+1, err)
		}

		if !ok {
			logger.Debug("Dropping row", "row", i+1, "id", row.Get(tr.dataset.Schema.Id))
			continue
		}

		fc.Append(body)
	}

	return document.FormatDocument(fc)
}

// TransformRow derives a single serialized feature for 'row'. The second
// return value is false when the row is dropped.
func (tr *Transformer) TransformRow(ctx context.Context, row tabular.Row) ([]byte, bool, error) {

	s := tr.dataset.Schema

	if !Locatable(row, s) {
		return nil, false, nil
	}

	id := row.Get(s.Id)
	title := row.Get(s.Title)

	if id == "" || title == "" {
		return nil, false, nil
	}

	lon, err := strconv.ParseFloat(row.Get(s.Longitude), 64)

	if err != nil {
		return nil, false, nil
	}

	lat, err := strconv.ParseFloat(row.Get(s.Latitude), 64)

	if err != nil {
		return nil, false, nil
	}

	f := &document.Feature{
		Id:         tr.dataset.PlaceURI + id,
		Type:       "Feature",
		Properties: tr.properties(row),
		Descriptions: []*document.Description{
			&document.Description{Value: tr.description(row)},
		},
		Geometry: document.NewPointGeometry(lon, lat),
	}

	body, err := document.FormatFeature(f)

	if err != nil {
		return nil, false, err
	}

	for _, e := range tr.enrichments() {

		body, err = e(ctx, row, body)

		if err != nil {
			return nil, false, err
		}
	}

	return body, true, nil
}

// Locatable applies the locatedness gate: a record proceeds unless its
// location precision is exactly "unlocated" or it lacks both a title and a
// longitude. The title / longitude disjunction is deliberately permissive and
// matches the historical behaviour; either value alone is enough to pass.
func Locatable(row tabular.Row, s dataset.Schema) bool {

	if s.LocationPrecision != "" && row.Get(s.LocationPrecision) == places.UNLOCATED {
		return false
	}

	return row.Get(s.Title) != "" || row.Get(s.Longitude) != ""
}

// properties assembles the display properties for 'row': the trimmed title,
// formatted dates, pass-through fields and the raw value of every populated
// authority column.
func (tr *Transformer) properties(row tabular.Row) map[string]interface{} {

	s := tr.dataset.Schema

	props := make(map[string]interface{})

	props["title"] = row.Get(s.Title)

	if s.Created != "" {

		if v, ok := FormatDate(row.Raw(s.Created)); ok {
			props["formattedDate"] = v
		}

		if v, ok := YearAdded(row.Raw(s.Created)); ok {
			props["yearAdded"] = v
		}
	}

	if s.Modified != "" {

		if v, ok := FormatDate(row.Raw(s.Modified)); ok {
			props["modified"] = v
		}
	}

	if s.Authors != "" {

		if v := row.Get(s.Authors); v != "" {
			props["authors"] = v
		}
	}

	if s.LocationPrecision != "" {

		if v := row.Get(s.LocationPrecision); v != "" {
			props["locationPrecision"] = v
		}
	}

	if s.MinDate != "" {

		if v := row.Get(s.MinDate); v != "" {
			props["minDate"] = v
		}
	}

	if s.MaxDate != "" {

		if v := row.Get(s.MaxDate); v != "" {
			props["maxDate"] = v
		}
	}

	if s.FeatureTypes != "" {

		if v := row.Get(s.FeatureTypes); v != "" {
			props["featureTypes"] = splitList(v)
		}
	}

	for _, a := range tr.dataset.Authorities {

		if v := row.Get(a.Column); v != "" {
			props[a.Column] = v
		}
	}

	return props
}

// description combines the trimmed free-text description with the
// authorship, time-period and source-identifier annotations configured for
// the dataset.
func (tr *Transformer) description(row tabular.Row) string {

	s := tr.dataset.Schema

	parts := make([]string, 0, 4)

	if s.Description != "" {

		if v := row.Get(s.Description); v != "" {
			parts = append(parts, v)
		}
	}

	if s.Authors != "" {

		if v := row.Get(s.Authors); v != "" {
			parts = append(parts, fmt.Sprintf("Authors: %s.", v))
		}
	}

	if s.MinDate != "" && s.MaxDate != "" {

		min_date := row.Get(s.MinDate)
		max_date := row.Get(s.MaxDate)

		if min_date != "" && max_date != "" {
			parts = append(parts, fmt.Sprintf("Time period: %s to %s.", min_date, max_date))
		}
	}

	if tr.dataset.SourceLabel != "" {

		if v := row.Get(s.Id); v != "" {
			parts = append(parts, fmt.Sprintf("%s: %s.", tr.dataset.SourceLabel, v))
		}
	}

	return strings.Join(parts, " ")
}

func splitList(raw string) []string {

	parts := make([]string, 0)

	for _, p := range strings.Split(raw, ",") {

		p = strings.TrimSpace(p)

		if p != "" {
			parts = append(parts, p)
		}
	}

	return parts
}
