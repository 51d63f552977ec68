package transform

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
)

// Invocation defines a single transform request handled in lambda mode.
type Invocation struct {
	// The name of the dataset definition to transform. If empty the
	// application's -dataset flag is used.
	Dataset string `json:"dataset,omitempty"`
	// The path of the source table, relative to the application's reader URI.
	Input string `json:"input,omitempty"`
	// The path of the document to write, relative to the application's writer URI.
	Output string `json:"output,omitempty"`
}

func runLambda(ctx context.Context, opts *RunOptions) error {

	handler := func(ctx context.Context, inv *Invocation) error {

		local_opts := *opts

		if inv.Dataset != "" {
			local_opts.Dataset = inv.Dataset
		}

		local_opts.Input = inv.Input
		local_opts.Output = inv.Output

		return runTransform(ctx, &local_opts)
	}

	lambda.Start(handler)
	return nil
}
