package main

import (
	"os"

	"github.com/matforge/recordlists-go/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
