package main

import (
	"os"

	"github.com/klabast/wb-services/feriados-kalender/internal/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
