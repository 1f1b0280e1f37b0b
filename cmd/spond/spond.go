package main

import (
	"log"

	"github.com/joho/godotenv"

	"tableflip.dev/spond/pkg/commands"
)

func main() {
	// Pick up SLACK_USER_TOKEN from a .env file if one is present.
	_ = godotenv.Load()

	if err := commands.New().Execute(); err != nil {
		log.Fatalf("error during command execution: %v", err)
	}
}
