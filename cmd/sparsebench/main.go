// SPDX-License-Identifier: MIT

// Command sparsebench compares dense and COO-sparse matrices.
//
// Usage:
//
//	sparsebench                      # interactive menu
//	sparsebench -mode demo -seed 42  # one demo transcript
//	sparsebench -mode bench -sizes 10,100,500 -kernel indexed -chart speedup.png
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger := log.New(os.Stderr, "sparsebench: ", log.LstdFlags)

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, logger); err != nil {
		logger.Fatal(err)
	}
}
