package main

import "github.com/katalvlaran/dpkit/internal/cli"

// main is the entry point of the dpkit CLI application.
func main() {
	cli.Execute()
}
