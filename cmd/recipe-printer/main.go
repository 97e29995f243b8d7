package main

import (
	"github.com/joho/godotenv"

	"github.com/mchmarny/recipe-printer/pkg/cli"
)

func main() {
	// credentials may live in a .env file next to the invocation
	_ = godotenv.Load()

	cli.Execute()
}
