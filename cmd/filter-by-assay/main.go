// cmd/filter-by-assay/main.go
package main

import (
	"assayfilter/internal/appshell"
	"assayfilter/internal/filterapp"
)

func main() {
	appshell.Main(filterapp.Run)
}
