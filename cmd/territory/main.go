// Package main provides the territory binary entry point.
// Territory is a terminal explorer for topic model exports: it shows the
// topic map as a navigable list of topics, each with its share of the
// territory and its most representative documents.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
