// Package main is the entry point for the cctarget CLI.
package main

import (
	"os"

	"github.com/thoreinstein/cctarget/cmd/cctarget/commands"
)

func main() {
	os.Exit(commands.Execute(os.Args[1:]))
}
