// main.go
//
// Entry point. All wiring lives in internal/cli.

package main

import "github.com/quintile/wordle/internal/cli"

func main() {
	cli.Execute()
}
