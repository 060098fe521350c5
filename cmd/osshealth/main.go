package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/example/osshealth/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		if !errors.Is(err, cli.ErrUsage) {
			fmt.Fprintln(os.Stderr, "osshealth:", err)
		}
		os.Exit(1)
	}
}
