package main

import (
	"os"

	"carousel/cmd/handlers"
	"carousel/internal/logger"
)

func main() {
	logger.Init()
	if err := handlers.Execute(); err != nil {
		os.Exit(1)
	}
}
