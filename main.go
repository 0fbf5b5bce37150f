package main

import (
	"os"

	"github.com/Benchkram/errz"
	"github.com/puppetlabs/accfind/cmd"
	"github.com/puppetlabs/accfind/config"
)

func main() {
	errz.Fatal(config.Load(), "Failed to load accfind's config")

	os.Exit(cmd.Execute())
}
