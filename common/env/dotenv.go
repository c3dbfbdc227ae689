package env

import "github.com/joho/godotenv"

// values from a local .env file never override the real environment
func init() {
	_ = godotenv.Load()
}
