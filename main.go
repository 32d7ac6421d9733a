package main

import (
	"os"

	"github.com/GoFrontPage/GoFrontPage/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
