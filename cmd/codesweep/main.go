package main

import (
	"os"

	"github.com/codesweep/codesweep/internal/adapters/inbound/cli"
)

func main() {
	os.Exit(cli.Execute())
}
