// cmd/hetscan-plot/main.go
package main

import (
	"os"

	"hetscan/internal/plotapp"
)

func main() {
	os.Exit(plotapp.Run(os.Args[1:], os.Stdout, os.Stderr))
}
