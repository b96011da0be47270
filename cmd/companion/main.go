package main

import (
	"os"

	"github.com/easeaico/companion-web/internal/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
