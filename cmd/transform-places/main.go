package main

import (
	"context"
	"log"

	_ "github.com/whosonfirst/go-reader-github/v2"
	_ "gocloud.dev/runtimevar/awsparamstore"
	_ "gocloud.dev/runtimevar/constantvar"
	_ "gocloud.dev/runtimevar/filevar"

	"github.com/heritagemaps/go-linked-places/app/transform"
)

func main() {

	ctx := context.Background()

	err := transform.Run(ctx)

	if err != nil {
		log.Fatalf("Failed to transform places, %v", err)
	}
}
