package main

import (
	"os"

	"verbose-log/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
