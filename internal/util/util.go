package util

import "os"

// GetEnvDefault returns the environment variable value, or fallback when
// it is unset or empty.
func GetEnvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
