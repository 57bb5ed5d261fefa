package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"fjacquet/co-early-votes/cmd/root"
	"fjacquet/co-early-votes/internal/config"
)

func main() {
	// .env must be loaded before the configuration reads the environment.
	if envFile, err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: error loading %s: %v\n", envFile, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := root.Cmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
