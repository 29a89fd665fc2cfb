// cmd/tsv-compare/main.go
package main

import (
	"assayfilter/internal/appshell"
	"assayfilter/internal/compareapp"
)

func main() {
	appshell.Main(compareapp.Run)
}
