// Package main is the single-binary entrypoint for pacer, a personal task
// timer: one daemon that ticks, one CLI that talks to it.
package main

import "github.com/pacerlabs/pacer/internal/cli"

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cli.Execute(version)
}
