package dataset

import (
	places "github.com/heritagemaps/go-linked-places"
	"github.com/heritagemaps/go-linked-places/document"
)

// HeritageAtRisk returns the dataset definition for the Historic England
// "Heritage at Risk" register, enriched with Wikidata type identifiers and a
// self-referential Pleiades cross-link.
func HeritageAtRisk() *Dataset {

	return &Dataset{
		Name:        "heritage-at-risk",
		PlaceURI:    "https://historicengland.org.uk/advice/heritage-at-risk/search-register/list-entry/",
		SourceLabel: "List entry",
		Input:       "data/heritage-at-risk.csv",
		Output:      "docs/data/heritage-at-risk-lp.json",
		Schema: Schema{
			Id:                "listEntry",
			Title:             "name",
			Description:       "description",
			Created:           "created",
			Modified:          "modified",
			LocationPrecision: "locationPrecision",
			Longitude:         "long",
			Latitude:          "lat",
			FeatureTypes:      "heritageCategory",
			Image:             "image",
		},
		Authorities: []*Authority{
			{Column: "pleiades", URL: "https://pleiades.stoa.org/places/", Label: "Pleiades: "},
		},
		TypePairs: []*TypePair{
			{IdColumn: "wikidataType", LabelColumn: "siteSubType", URL: "https://www.wikidata.org/wiki/", Label: "Site type: "},
			{IdColumn: "wikidataEntity", LabelColumn: "heritageCategory", URL: "https://www.wikidata.org/wiki/", Label: "Heritage category: "},
		},
		Indexing: &document.Indexing{
			Context:     places.INDEXING_CONTEXT,
			Type:        places.INDEXING_TYPE,
			Name:        "Heritage at Risk",
			Description: "Sites from the Historic England Heritage at Risk register.",
			License:     "https://www.nationalarchives.gov.uk/doc/open-government-licence/version/3/",
			Identifier:  "https://historicengland.org.uk/advice/heritage-at-risk/",
		},
	}
}
