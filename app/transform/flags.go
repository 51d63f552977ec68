package transform

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/sfomuseum/go-flags/flagset"
)

var mode string

var dataset_name string
var dataset_definitions string

var reader_uri string
var writer_uri string

var input_path string
var output_path string

var access_token_uri string
var author string

var verbose bool

func DefaultFlagSet(ctx context.Context) *flag.FlagSet {

	fs := flagset.NewFlagSet("places")

	fs.StringVar(&mode, "mode", "cli", "Valid options are: cli, lambda.")

	fs.StringVar(&dataset_name, "dataset", "pleiades", "The name of the dataset definition to transform.")
	fs.StringVar(&dataset_definitions, "dataset-definitions", "", "An optional path to a TOML document defining additional datasets.")

	fs.StringVar(&reader_uri, "reader-uri", "fs:///usr/local/data/linked-places", "A valid whosonfirst/go-reader URI where source tables are read from.")
	fs.StringVar(&writer_uri, "writer-uri", "fs:///usr/local/data/linked-places", "A valid whosonfirst/go-writer URI where documents are written to.")

	fs.StringVar(&input_path, "input", "", "The path of the source table, relative to -reader-uri. If empty the dataset's default input path is used.")
	fs.StringVar(&output_path, "output", "", "The path of the document to write, relative to -writer-uri. If empty the dataset's default output path is used.")

	fs.StringVar(&access_token_uri, "access-token", "", "A valid gocloud.dev/runtimevar URI")
	fs.StringVar(&author, "author", "transform-places", "The author credited when publishing documents to GitHub.")

	fs.BoolVar(&verbose, "verbose", false, "Enable verbose (debug) logging.")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "transform-places is a command-line tool for deriving Linked Places documents from tabular place datasets.\n")
		fmt.Fprintf(os.Stderr, "Usage:\n\t %s [options]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Valid options are:\n")
		fs.PrintDefaults()
	}

	return fs
}
