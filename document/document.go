// Package document defines Linked Places flavoured GeoJSON documents: GeoJSON
// Feature and FeatureCollection shapes extended with dataset-level indexing
// metadata and the optional descriptions, depictions, types and links blocks
// understood by gazetteer map viewers.
package document

import (
	"encoding/json"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Indexing is the dataset-level descriptive block distinct from per-feature
// data. It is the canonical source for the details-overlay shown by the map
// front end.
type Indexing struct {
	Context     string `json:"@context" toml:"context"`
	Type        string `json:"@type" toml:"type"`
	Name        string `json:"name" toml:"name"`
	Description string `json:"description" toml:"description"`
	License     string `json:"license" toml:"license"`
	Identifier  string `json:"identifier" toml:"identifier"`
}

// Description is a single free-text block attached to a feature.
type Description struct {
	Value string `json:"value"`
}

// Depiction references an external image depicting a feature.
type Depiction struct {
	Id        string `json:"@id"`
	Thumbnail string `json:"thumbnail"`
}

// Type is a typed classification of a feature, resolved to an external
// authority identifier.
type Type struct {
	Identifier string `json:"identifier"`
	Label      string `json:"label"`
}

// Link is a cross-reference from a feature to an external authority record.
type Link struct {
	Identifier string `json:"identifier"`
	Type       string `json:"type"`
	Label      string `json:"label"`
}

// Feature is a Linked Places place record. The optional blocks carry
// `omitempty` hooks so that absent data yields absent keys rather than empty
// lists.
type Feature struct {
	Id           string                 `json:"@id"`
	Type         string                 `json:"type"`
	Properties   map[string]interface{} `json:"properties"`
	Descriptions []*Description         `json:"descriptions,omitempty"`
	Depictions   []*Depiction           `json:"depictions,omitempty"`
	Types        []*Type                `json:"types,omitempty"`
	Links        []*Link                `json:"links,omitempty"`
	Geometry     *geojson.Geometry      `json:"geometry"`
}

// FeatureCollection is the complete output document: indexing metadata plus
// an ordered sequence of serialized features.
type FeatureCollection struct {
	Type     string            `json:"type"`
	Indexing *Indexing         `json:"indexing"`
	Features []json.RawMessage `json:"features"`
}

// NewFeatureCollection returns an empty `FeatureCollection` described by 'idx'.
func NewFeatureCollection(idx *Indexing) *FeatureCollection {

	return &FeatureCollection{
		Type:     "FeatureCollection",
		Indexing: idx,
		Features: make([]json.RawMessage, 0),
	}
}

// Append adds the serialized feature 'body' to the end of the collection.
func (fc *FeatureCollection) Append(body []byte) {
	fc.Features = append(fc.Features, json.RawMessage(body))
}

// NewPointGeometry returns a GeoJSON `Point` geometry for 'lon', 'lat'.
// Coordinates are passed through without bounds validation.
func NewPointGeometry(lon float64, lat float64) *geojson.Geometry {
	return geojson.NewGeometry(orb.Point{lon, lat})
}
