package main

import (
	"os"

	"dockerls/internal/commands"

	"github.com/charmbracelet/log"
)

func main() {
	if err := commands.RootCmd().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
