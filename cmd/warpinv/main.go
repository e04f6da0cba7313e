// SPDX-License-Identifier: MIT

// Command warpinv evaluates 3-D warps forward and inverts them numerically.
package main

import (
	"os"

	"github.com/katalvlaran/warpinv/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
