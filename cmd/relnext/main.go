package main

import (
	"os"

	"github.com/relnext/relnext/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
