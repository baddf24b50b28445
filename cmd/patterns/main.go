package main

import (
	"os"

	"github.com/xuenqlve/patterns/log"
)

func main() {
	cmd := NewRootCommand(os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		log.Errorf("patterns: %v", err)
		os.Exit(1)
	}
}
