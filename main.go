package main

import (
	"os"

	"github.com/bebsworthy/procpuppet/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
