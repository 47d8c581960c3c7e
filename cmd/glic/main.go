package main

import (
	"context"
	"fmt"
	"os"

	"glic/cmd/glic/cmd"
)

func main() {
	ctx := context.Background()
	if err := cmd.NewRoot(ctx).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
