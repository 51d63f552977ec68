package dataset

import (
	"context"
	"strings"
	"testing"
)

func TestCatalogBuiltins(t *testing.T) {

	ctx := context.Background()

	c := NewCatalog(ctx)

	names := c.Names()

	if strings.Join(names, ",") != "heritage-at-risk,pleiades" {
		t.Fatalf("Unexpected dataset names '%s'", strings.Join(names, ","))
	}

	ds, err := c.Dataset("pleiades")

	if err != nil {
		t.Fatalf("Failed to resolve pleiades dataset, %v", err)
	}

	if len(ds.Authorities) != 8 {
		t.Fatalf("Expected 8 authorities, got %d", len(ds.Authorities))
	}

	if ds.Indexing == nil || ds.Indexing.Name != "Pleiades" {
		t.Fatalf("Unexpected indexing block")
	}

	har, err := c.Dataset("heritage-at-risk")

	if err != nil {
		t.Fatalf("Failed to resolve heritage-at-risk dataset, %v", err)
	}

	if len(har.Authorities) != 1 {
		t.Fatalf("Expected 1 authority, got %d", len(har.Authorities))
	}

	if har.Authorities[0].Column != "pleiades" {
		t.Fatalf("Unexpected authority column '%s'", har.Authorities[0].Column)
	}

	_, err = c.Dataset("atlantis")

	if err == nil {
		t.Fatalf("Expected an error for an unknown dataset")
	}
}

func TestLoadDefinitions(t *testing.T) {

	ctx := context.Background()

	c := NewCatalog(ctx)

	err := c.LoadDefinitions(ctx, "testdata/datasets.toml")

	if err != nil {
		t.Fatalf("Failed to load definitions, %v", err)
	}

	ds, err := c.Dataset("test-register")

	if err != nil {
		t.Fatalf("Failed to resolve test-register dataset, %v", err)
	}

	if ds.PlaceURI != "https://example.com/places/" {
		t.Fatalf("Unexpected place URI '%s'", ds.PlaceURI)
	}

	if ds.Schema.Title != "name" {
		t.Fatalf("Unexpected title column '%s'", ds.Schema.Title)
	}

	if len(ds.Authorities) != 1 || ds.Authorities[0].URL != "https://www.wikidata.org/wiki/" {
		t.Fatalf("Unexpected authorities")
	}

	if ds.Indexing == nil || ds.Indexing.License != "https://creativecommons.org/licenses/by/4.0/" {
		t.Fatalf("Unexpected indexing block")
	}

	// Built-ins are still present alongside loaded definitions

	_, err = c.Dataset("pleiades")

	if err != nil {
		t.Fatalf("Failed to resolve pleiades dataset, %v", err)
	}
}

func TestLoadDefinitionsMissing(t *testing.T) {

	ctx := context.Background()

	c := NewCatalog(ctx)

	err := c.LoadDefinitions(ctx, "testdata/missing.toml")

	if err == nil {
		t.Fatalf("Expected an error for a missing definitions file")
	}
}
