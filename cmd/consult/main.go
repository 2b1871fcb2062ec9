package main

import (
	"os"

	"github.com/sant0-9/consult/cmd/consult/cmd"
)

var version = "dev"

func main() {
	os.Exit(cmd.Execute(version))
}
