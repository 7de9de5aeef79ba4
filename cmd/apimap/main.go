// Package main is the entry point for the apimap CLI tool.
package main

import (
	"github.com/apimap/apimap/internal/cmd"
)

func main() {
	cmd.Execute()
}
