package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrymomot/splitkit/cmd/splitcheck/commands"
)

func main() {
	if err := commands.Execute(context.Background()); err != nil {
		if !errors.Is(err, commands.ErrRejected) {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(2)
		}
		os.Exit(1)
	}
}
