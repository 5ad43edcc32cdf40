// cubesim - CLI for shuffling, solving and exploring N x N x N cubes.
package main

import (
	"github.com/cubekit/cubesim/internal/cli"
)

func main() {
	cli.Execute()
}
