// file: main.go
// version: 2.0.0
// guid: 0d4e7a19-6c2b-4f85-9e31-a8b5c7d2f640

package main

import (
	"fmt"
	"os"

	"github.com/jdfalk/library-catalog/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
