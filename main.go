package main

import (
	"os"

	"github.com/GoFleet-Admin/GoFleet-Admin/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
