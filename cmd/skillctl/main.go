// skillctl runs keyword extraction offline and mints tokens for the history API.
package main

import (
	"os"

	"github.com/artem13815/skillscan/cmd/skillctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
