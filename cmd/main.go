// cmd/main.go is the application entry point.
// It wires together all layers and runs the console menu or the HTTP server.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
