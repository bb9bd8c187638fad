package main

import (
	"os"

	"github.com/beka-birhanu/vinom-maze/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}
