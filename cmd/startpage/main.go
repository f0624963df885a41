package main

import (
	"fmt"
	"os"

	"github.com/khulnasoft/startpage/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ startpage: %v\n", err)
		os.Exit(1)
	}
}
