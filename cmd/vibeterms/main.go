// Package main is the vibeterms command line: browse the glossary, generate
// new terms and ask the AI tutor, either against the local data directory or
// a running vibeterms-server.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(openGlossary).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
