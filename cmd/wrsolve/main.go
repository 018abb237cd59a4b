package main

import (
	"fmt"
	"os"

	"github.com/Vini9-6/solucao-edp/cmd/wrsolve/commands"
	"github.com/cockroachdb/errors"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		for _, hint := range errors.GetAllHints(err) {
			fmt.Fprintf(os.Stderr, "Hint: %s\n", hint)
		}
		os.Exit(1)
	}
}
