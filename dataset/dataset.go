// Package dataset defines the source table variants the transformer knows how
// to read: which columns bind to which well-known fields, the external
// authority tables used to synthesize links and types, and the indexing
// metadata describing each published dataset. Definitions are immutable
// configuration so the authority lists stay auditable independently of record
// transformation.
package dataset

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/heritagemaps/go-linked-places/document"
)

// Authority maps an identifier column to the URL and label prefixes used for
// link synthesis.
type Authority struct {
	Column string `toml:"column"`
	URL    string `toml:"url"`
	Label  string `toml:"label"`
}

// TypePair maps a pair of (authority identifier, local label) columns to the
// URL and label prefixes used for type synthesis. A pair only contributes a
// type when both columns are populated.
type TypePair struct {
	IdColumn    string `toml:"id_column"`
	LabelColumn string `toml:"label_column"`
	URL         string `toml:"url"`
	Label       string `toml:"label"`
}

// Schema binds the transformer's well-known fields to column names. Fields
// left empty are simply never consulted for that variant.
type Schema struct {
	Id                string `toml:"id"`
	Title             string `toml:"title"`
	Description       string `toml:"description"`
	Created           string `toml:"created"`
	Modified          string `toml:"modified"`
	Authors           string `toml:"authors"`
	LocationPrecision string `toml:"location_precision"`
	Longitude         string `toml:"longitude"`
	Latitude          string `toml:"latitude"`
	MinDate           string `toml:"min_date"`
	MaxDate           string `toml:"max_date"`
	FeatureTypes      string `toml:"feature_types"`
	Image             string `toml:"image"`
}

// Dataset is the complete, immutable configuration for one source table
// variant.
type Dataset struct {
	Name        string             `toml:"name"`
	PlaceURI    string             `toml:"place_uri"`
	SourceLabel string             `toml:"source_label"`
	Input       string             `toml:"input"`
	Output      string             `toml:"output"`
	Schema      Schema             `toml:"schema"`
	Authorities []*Authority       `toml:"authorities"`
	TypePairs   []*TypePair        `toml:"type_pairs"`
	Indexing    *document.Indexing `toml:"indexing"`
}

type definitions struct {
	Datasets []*Dataset `toml:"dataset"`
}

// Catalog resolves dataset definitions by name.
type Catalog struct {
	datasets map[string]*Dataset
}

// NewCatalog returns a `Catalog` holding the built-in dataset definitions.
func NewCatalog(ctx context.Context) *Catalog {

	datasets := map[string]*Dataset{
		"pleiades":         Pleiades(),
		"heritage-at-risk": HeritageAtRisk(),
	}

	return &Catalog{
		datasets: datasets,
	}
}

// LoadDefinitions reads additional dataset definitions from the TOML document
// at 'path' and registers them, replacing built-ins with the same name.
func (c *Catalog) LoadDefinitions(ctx context.Context, path string) error {

	body, err := os.ReadFile(path)

	if err != nil {
		return fmt.Errorf("Failed to read %s, %w", path, err)
	}

	var defs definitions

	err = toml.Unmarshal(body, &defs)

	if err != nil {
		return fmt.Errorf("Failed to parse dataset definitions %s, %w", path, err)
	}

	for _, ds := range defs.Datasets {

		if ds.Name == "" {
			return fmt.Errorf("Failed to register dataset definition in %s, missing name", path)
		}

		c.datasets[ds.Name] = ds
	}

	return nil
}

// Dataset returns the definition registered as 'name'.
func (c *Catalog) Dataset(name string) (*Dataset, error) {

	ds, ok := c.datasets[name]

	if !ok {
		return nil, fmt.Errorf("Unknown dataset '%s', expected one of: %s", name, strings.Join(c.Names(), ", "))
	}

	return ds, nil
}

// Names returns the sorted names of all registered datasets.
func (c *Catalog) Names() []string {

	names := make([]string, 0, len(c.datasets))

	for name := range c.datasets {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}
