package transform

import (
	"context"
	"flag"
	"fmt"

	"github.com/sfomuseum/go-flags/flagset"
)

type RunOptions struct {
	Mode                 string
	Dataset              string
	DatasetDefinitions   string
	ReaderURI            string
	WriterURI            string
	Input                string
	Output               string
	GitHubAccessTokenURI string
	Author               string
	Verbose              bool
}

func RunOptionsFromFlagSet(ctx context.Context, fs *flag.FlagSet) (*RunOptions, error) {

	flagset.Parse(fs)

	err := flagset.SetFlagsFromEnvVars(fs, "LINKEDPLACES")

	if err != nil {
		return nil, fmt.Errorf("Failed to set flags from environment variables, %w", err)
	}

	opts := &RunOptions{
		Mode:                 mode,
		Dataset:              dataset_name,
		DatasetDefinitions:   dataset_definitions,
		ReaderURI:            reader_uri,
		WriterURI:            writer_uri,
		Input:                input_path,
		Output:               output_path,
		GitHubAccessTokenURI: access_token_uri,
		Author:               author,
		Verbose:              verbose,
	}

	return opts, nil
}
