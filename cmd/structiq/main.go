package main

import (
	"os"

	"github.com/OnteruYallaiah21/StrcuctIq/cmd/structiq/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
