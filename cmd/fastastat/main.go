package main

import (
	"fastaparser/internal/appshell"
	"fastaparser/internal/statapp"
)

func main() {
	appshell.Main(statapp.RunContext)
}
