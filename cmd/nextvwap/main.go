package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"NextVWAP/internal/cli"
	"NextVWAP/internal/collector"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCmd().ExecuteContext(ctx); err != nil {
		var nf *collector.NotFoundError
		if errors.As(err, &nf) {
			fmt.Fprintf(os.Stderr, "Stock ticker %q not found (%s)\n", nf.Symbol, nf.Provider)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		stop()
		os.Exit(1)
	}
}
