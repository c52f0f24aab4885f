package main

import (
	"github.com/factoman/factoman/cmd"

	// Modules of factoman
	_ "github.com/factoman/factoman/utils"
)

func main() {
	cmd.Execute()
}
