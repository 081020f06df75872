package main

import (
	"log"
	"os"

	"github.com/rogerio-castellano/inventory-store/cmd/inventory/commands"
)

// @title Inventory Store API
// @version 1.0
// @description REST API for an item stock list persisted to a JSON file.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		log.Printf("Command execution failed: %v", err)
		os.Exit(1)
	}
}
