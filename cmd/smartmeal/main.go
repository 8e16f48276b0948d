// smartmeal is the SmartMeal recipe server and corpus tooling.
// It serves recipes by id with drift-tolerant resolution: exact first,
// then normalized, case-insensitive, and fuzzy matching with ranked
// "did you mean" suggestions on failure.
package main

import (
	"os"

	"github.com/smartmeal/smartmeal/cmd/smartmeal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
