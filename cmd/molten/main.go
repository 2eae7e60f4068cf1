// Package main is the entry point for the molten CLI.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/moltenlabs/brand/cmd/molten/commands"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, opts ...commands.Option) int {
	cli := commands.New(opts...)
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)

	if err := cli.Execute(ctx); err != nil {
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}
	return 0
}
