package github

import (
	"context"
	"fmt"
	"net/url"
)

// UpdateWriterURIOptions defines the details recorded against a GitHub
// publish of a generated dataset document.
type UpdateWriterURIOptions struct {
	// The name of the dataset being published.
	Dataset string
	// The author credited in commit messages and pull requests.
	Author string
}

// UpdateWriterURI decorates GitHub-backed writer URIs with commit or pull
// request details describing a dataset publish. Non-GitHub URIs are returned
// unchanged.
func UpdateWriterURI(ctx context.Context, opts *UpdateWriterURIOptions, writer_uri string) (string, error) {

	wr_u, err := url.Parse(writer_uri)

	if err != nil {
		return "", fmt.Errorf("Failed to parse URI, %w", err)
	}

	switch wr_u.Scheme {

	case "githubapi":

		update_msg := fmt.Sprintf("[%s] updated %s linked places data, ", opts.Author, opts.Dataset)
		update_msg = update_msg + "%s" // the writer substitutes the path being written

		wr_q := wr_u.Query()

		wr_q.Del("new")
		wr_q.Del("update")

		wr_q.Set("new", update_msg)
		wr_q.Set("update", update_msg)

		wr_u.RawQuery = wr_q.Encode()

	case "githubapi-pr":

		title := fmt.Sprintf("[%s] update %s linked places data", opts.Author, opts.Dataset)
		description := title

		branch := fmt.Sprintf("%s-%s", opts.Author, opts.Dataset)

		wr_q := wr_u.Query()

		wr_q.Del("pr-branch")
		wr_q.Del("pr-title")
		wr_q.Del("pr-description")

		wr_q.Set("pr-branch", branch)
		wr_q.Set("pr-title", title)
		wr_q.Set("pr-description", description)

		wr_u.RawQuery = wr_q.Encode()
	}

	return wr_u.String(), nil
}
