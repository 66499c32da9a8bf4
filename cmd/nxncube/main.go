// nxncube - CLI for building NxNxN cubes and turning their layers.
package main

import (
	"github.com/SeamusWaldron/nxncube/internal/cli"
)

func main() {
	cli.Execute()
}
