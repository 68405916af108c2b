package main

import (
	"os"

	"github.com/kryptnostic/loom-api-go/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
