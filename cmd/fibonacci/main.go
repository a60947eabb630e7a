// cmd/fibonacci/main.go
package main

import (
	"practicals/internal/appshell"
	"practicals/internal/fibapp"
)

func main() { appshell.Main(fibapp.RunContext) }
