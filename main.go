// Package main is the entry point for the elgen CLI.
package main

import "elgen.dev/pkg/elgen/cmd"

func main() {
	cmd.Execute()
}
