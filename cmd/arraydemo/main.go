// cmd/arraydemo/main.go
package main

import (
	"practicals/internal/appshell"
	"practicals/internal/arrayapp"
)

func main() { appshell.Main(arrayapp.RunContext) }
