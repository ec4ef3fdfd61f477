package main

import (
	"os"

	// Load API keys and project settings from a local .env file.
	_ "github.com/joho/godotenv/autoload"

	"github.com/lionspace/vertexflow/cmd/vertexflow/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
