package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/iudanet/stenodict/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if cli.IsNotFound(err) {
			fmt.Fprintln(os.Stderr, "Check the dictionaries list in the config file or the --dictionary flags.")
		}
		stop()
		os.Exit(1)
	}
}
