package main

import (
	"fmt"
	"os"

	"github.com/loxi-lang/loxi/cmd/loxi/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(65)
	}
}
