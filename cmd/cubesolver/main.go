// cubesolver - CLI for building knowledge bases and solving NxNxN cube scrambles.
package main

import (
	"github.com/SeamusWaldron/cubesolver/internal/cli"
)

func main() {
	cli.Execute()
}
