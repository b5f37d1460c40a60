// Package main is the entry point for the udh CLI.
package main

import (
	"fmt"
	"os"

	"github.com/sandy081/userdata-history/cmd/udh/commands"
	"github.com/sandy081/userdata-history/internal/errors"
)

func main() {
	err := commands.Execute()
	if err == nil {
		return
	}

	fmt.Fprintln(os.Stderr, "Error:", err)

	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Suggestion != "" {
			fmt.Fprintln(os.Stderr, exitErr.Suggestion)
		}
		os.Exit(exitErr.Code)
	}
	os.Exit(errors.ExitUser)
}
