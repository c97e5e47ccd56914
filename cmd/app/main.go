package main

import (
	"os"

	"github.com/Ravishrk124/helpnet.in/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		os.Exit(1)
	}
}
