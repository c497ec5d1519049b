package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
)

func main() {
	cmd := newRootCommand(afero.NewOsFs())
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
