// Package transform implements the "transform places" application: load a
// tabular dataset through a reader URI, derive its Linked Places document and
// publish the result through a writer URI.
package transform

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log/slog"

	"github.com/heritagemaps/go-linked-places/dataset"
	"github.com/heritagemaps/go-linked-places/github"
	"github.com/heritagemaps/go-linked-places/tabular"
	lp_transform "github.com/heritagemaps/go-linked-places/transform"
	"github.com/whosonfirst/go-ioutil"
	"github.com/whosonfirst/go-reader/v2"
	gh_writer "github.com/whosonfirst/go-writer-github/v3"
	"github.com/whosonfirst/go-writer/v3"
)

// Run executes the "transform places" application with a default
// `flag.FlagSet` instance.
func Run(ctx context.Context) error {
	fs := DefaultFlagSet(ctx)
	return RunWithFlagSet(ctx, fs)
}

// RunWithFlagSet executes the "transform places" application with a
// `flag.FlagSet` instance defined by 'fs'.
func RunWithFlagSet(ctx context.Context, fs *flag.FlagSet) error {

	opts, err := RunOptionsFromFlagSet(ctx, fs)

	if err != nil {
		return err
	}

	return RunWithOptions(ctx, opts)
}

func RunWithOptions(ctx context.Context, opts *RunOptions) error {

	if opts.Verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
		slog.Debug("Verbose logging enabled")
	}

	switch opts.Mode {
	case "cli":
		return runTransform(ctx, opts)
	case "lambda":
		return runLambda(ctx, opts)
	default:
		return fmt.Errorf("Invalid or unsupported mode")
	}
}

func runTransform(ctx context.Context, opts *RunOptions) error {

	catalog := dataset.NewCatalog(ctx)

	if opts.DatasetDefinitions != "" {

		err := catalog.LoadDefinitions(ctx, opts.DatasetDefinitions)

		if err != nil {
			return fmt.Errorf("Failed to load dataset definitions, %w", err)
		}
	}

	ds, err := catalog.Dataset(opts.Dataset)

	if err != nil {
		return err
	}

	input := opts.Input

	if input == "" {
		input = ds.Input
	}

	output := opts.Output

	if output == "" {
		output = ds.Output
	}

	writer_uri, err := gh_writer.EnsureGitHubAccessToken(ctx, opts.WriterURI, opts.GitHubAccessTokenURI)

	if err != nil {
		return fmt.Errorf("Failed to ensure access token for writer URI, %w", err)
	}

	update_opts := &github.UpdateWriterURIOptions{
		Dataset: ds.Name,
		Author:  opts.Author,
	}

	writer_uri, err = github.UpdateWriterURI(ctx, update_opts, writer_uri)

	if err != nil {
		return fmt.Errorf("Failed to update writer URI, %w", err)
	}

	r, err := reader.NewReader(ctx, opts.ReaderURI)

	if err != nil {
		return fmt.Errorf("Failed to create reader, %w", err)
	}

	wr, err := writer.NewWriter(ctx, writer_uri)

	if err != nil {
		return fmt.Errorf("Failed to create writer, %w", err)
	}

	tr, err := lp_transform.NewTransformer(ctx, ds)

	if err != nil {
		return fmt.Errorf("Failed to create transformer, %w", err)
	}

	tbl, err := tabular.LoadTable(ctx, r, input)

	if err != nil {
		return fmt.Errorf("Failed to load table %s, %w", input, err)
	}

	slog.Debug("Loaded table", "path", input, "rows", len(tbl.Rows))

	body, err := tr.TransformTable(ctx, tbl)

	if err != nil {
		return fmt.Errorf("Failed to transform %s, %w", ds.Name, err)
	}

	// The document is fully buffered before the single Write below so a
	// failed write surfaces the error without replacing prior output with a
	// truncated artifact.

	br := bytes.NewReader(body)
	fh, err := ioutil.NewReadSeekCloser(br)

	if err != nil {
		return fmt.Errorf("Failed to create ReadSeekCloser, %w", err)
	}

	_, err = wr.Write(ctx, output, fh)

	if err != nil {
		return fmt.Errorf("Failed to write %s, %w", output, err)
	}

	err = wr.Close(ctx)

	if err != nil {
		return fmt.Errorf("Failed to close writer, %w", err)
	}

	slog.Debug("Wrote document", "path", output, "bytes", len(body))

	return nil
}
