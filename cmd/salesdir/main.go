// Package main provides the salesdir CLI.
package main

import "github.com/gostonefire/salesdirectory/internal/cli"

func main() {
	cli.Execute()
}
