// cmd/taylor-e/main.go
package main

import (
	"practicals/internal/appshell"
	"practicals/internal/seriesapp"
)

func main() { appshell.Main(seriesapp.RunContext) }
