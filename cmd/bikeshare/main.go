// Package main is the entry point for the bikeshare explorer.
// Its sole responsibility is wiring dependencies together and running the
// selected command. No business logic belongs here.
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	cmd := newRootCmd(os.Stdin, os.Stdout, os.Stderr)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
