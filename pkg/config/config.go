// Package config provides configuration utilities shared by the CLI and
// server entry points.
package config

import (
	"os"
	"path/filepath"
)

// GetDataPath returns the data directory path.
// It checks for DATA_PATH environment variable, otherwise uses a default.
func GetDataPath() string {
	if path := os.Getenv("DATA_PATH"); path != "" {
		return path
	}

	// Default to current working directory
	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return filepath.Join(cwd, ".data")
}

// GetDatabasePath returns the path of the report database.
// It checks for DATABASE_PATH environment variable, otherwise uses a default.
func GetDatabasePath() string {
	if path := os.Getenv("DATABASE_PATH"); path != "" {
		return path
	}

	return filepath.Join(GetDataPath(), "plat-emailguard.db")
}
