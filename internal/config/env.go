package config

import "github.com/joho/godotenv"

// envFiles are loaded in order; variables already present in the process
// environment are never overridden.
var envFiles = []string{".env", ".env.local"}

// loadEnvFile loads every env file that exists. Missing files are skipped.
func loadEnvFile() {
	for _, path := range envFiles {
		_ = godotenv.Load(path)
	}
}
