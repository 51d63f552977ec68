package github

import (
	"context"
	"net/url"
	"testing"
)

func TestUpdateWriterURI(t *testing.T) {

	ctx := context.Background()

	opts := &UpdateWriterURIOptions{
		Dataset: "pleiades",
		Author:  "transform-places",
	}

	// Non-GitHub URIs pass through unchanged

	uri, err := UpdateWriterURI(ctx, opts, "fs:///usr/local/data")

	if err != nil {
		t.Fatalf("Failed to update writer URI, %v", err)
	}

	if uri != "fs:///usr/local/data" {
		t.Fatalf("Unexpected URI '%s'", uri)
	}

	// GitHub API URIs gain commit message details

	uri, err = UpdateWriterURI(ctx, opts, "githubapi://example-org/example-data?branch=main")

	if err != nil {
		t.Fatalf("Failed to update writer URI, %v", err)
	}

	u, err := url.Parse(uri)

	if err != nil {
		t.Fatalf("Failed to parse updated URI, %v", err)
	}

	q := u.Query()

	expected := "[transform-places] updated pleiades linked places data, %s"

	if q.Get("new") != expected {
		t.Fatalf("Unexpected new message '%s'", q.Get("new"))
	}

	if q.Get("update") != expected {
		t.Fatalf("Unexpected update message '%s'", q.Get("update"))
	}

	if q.Get("branch") != "main" {
		t.Fatalf("Expected existing query parameters to be preserved")
	}
}
