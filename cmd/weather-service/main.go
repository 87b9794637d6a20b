package main

import (
	"github.com/joho/godotenv"

	"github.com/poop4ik/weather-service/internal/bootstrap"
)

func main() {
	// .env is optional; real deployments pass the key via environment.
	_ = godotenv.Load()

	bootstrap.Bootstrap()
}
