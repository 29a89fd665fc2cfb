// cmd/autosome-check/main.go
package main

import (
	"assayfilter/internal/appshell"
	"assayfilter/internal/coverageapp"
)

func main() {
	appshell.Main(coverageapp.Run)
}
