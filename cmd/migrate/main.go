package main

import (
	"uparjan/internal/config" // Custom import path (Config)
	"uparjan/internal/db"     // Custom import path (Database)
)

// Main entry point for migration
func main() {
	cfg := config.LoadConfig() // Load configuration

	db.MigrateFile(cfg.DBPath) // Create the schema in the SQLite database file
}
