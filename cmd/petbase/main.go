// Package main provides the petbase CLI, the build-and-evolve pipeline for
// the pet-insurance comparison database.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
