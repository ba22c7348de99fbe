package main

import (
	"fastaparser/internal/app"
	"fastaparser/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
