package main

import (
	"os"

	"github.com/willowhq/willowcheck/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
