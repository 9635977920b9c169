package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/armn3t/go-spirits/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := cli.NewRootCmd().ExecuteContext(ctx)
	if err == nil {
		return
	}

	var noMatch *cli.NoMatchError
	if !errors.As(err, &noMatch) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	stop()
	os.Exit(1)
}
