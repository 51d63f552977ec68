package dataset

import (
	places "github.com/heritagemaps/go-linked-places"
	"github.com/heritagemaps/go-linked-places/document"
)

// Pleiades returns the dataset definition for the Pleiades ancient-places
// gazetteer export, enriched with external authority identifiers and
// Wikimedia Commons image references.
func Pleiades() *Dataset {

	return &Dataset{
		Name:        "pleiades",
		PlaceURI:    "https://pleiades.stoa.org/places/",
		SourceLabel: "Pleiades ID",
		Input:       "data/pleiades.csv",
		Output:      "docs/data/pleiades-lp.json",
		Schema: Schema{
			Id:                "id",
			Title:             "title",
			Description:       "description",
			Created:           "created",
			Modified:          "modified",
			Authors:           "authors",
			LocationPrecision: "locationPrecision",
			Longitude:         "reprLong",
			Latitude:          "reprLat",
			MinDate:           "minDate",
			MaxDate:           "maxDate",
			FeatureTypes:      "featureTypes",
			Image:             "image",
		},
		Authorities: []*Authority{
			{Column: "wikidata", URL: "https://www.wikidata.org/wiki/", Label: "Wikidata: "},
			{Column: "wikipedia", URL: "https://en.wikipedia.org/wiki/", Label: "Wikipedia: "},
			{Column: "geonames", URL: "https://www.geonames.org/", Label: "Geonames: "},
			{Column: "nomisma", URL: "http://nomisma.org/id/", Label: "Nomisma: "},
			{Column: "tgn", URL: "http://vocab.getty.edu/tgn/", Label: "Getty TGN: "},
			{Column: "loc", URL: "http://id.loc.gov/authorities/subjects/", Label: "Library of Congress: "},
			{Column: "viaf", URL: "https://viaf.org/viaf/", Label: "VIAF: "},
			{Column: "trismegistos", URL: "https://www.trismegistos.org/place/", Label: "Trismegistos: "},
		},
		TypePairs: []*TypePair{
			{IdColumn: "wikidataType", LabelColumn: "subType", URL: "https://www.wikidata.org/wiki/", Label: "Type: "},
			{IdColumn: "wikidataEntity", LabelColumn: "category", URL: "https://www.wikidata.org/wiki/", Label: "Category: "},
		},
		Indexing: &document.Indexing{
			Context:     places.INDEXING_CONTEXT,
			Type:        places.INDEXING_TYPE,
			Name:        "Pleiades",
			Description: "Ancient places from the Pleiades community-built gazetteer of the ancient world.",
			License:     "https://creativecommons.org/licenses/by/3.0/",
			Identifier:  "https://pleiades.stoa.org",
		},
	}
}
