//go:build ignore

// Generates random secrets for JWT signing and station API keys.
// Run with: go run scripts/generate_keys.go
package main

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"
)

func randomKey(length int) string {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		fmt.Fprintf(os.Stderr, "key generation failed: %v\n", err)
		os.Exit(1)
	}
	return base64.StdEncoding.EncodeToString(bytes)
}

func main() {
	fmt.Println("=== Transfer Service Key Generator ===")
	fmt.Println()
	fmt.Println("Add these to your .env file:")
	fmt.Println()
	fmt.Println("# JWT signing secrets (256 bit)")
	fmt.Printf("JWT_SECRET_KEY=%s\n", randomKey(32))
	fmt.Printf("JWT_REFRESH_SECRET_KEY=%s\n", randomKey(32))
	fmt.Println()
	fmt.Println("# Station API key (optional, used when JWT auth is disabled)")
	fmt.Printf("API_KEYS=%s\n", randomKey(24))
	fmt.Println()
	fmt.Println("Keep these out of version control and use different keys per environment.")
}
