package main

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"log"
)

const keySize = 32

func main() {
	buf := make([]byte, keySize)
	if _, err := rand.Read(buf); err != nil {
		log.Fatalf("Failed to generate jwt key: %v", err)
	}
	key := base64.StdEncoding.EncodeToString(buf)

	fmt.Println("=================================================")
	fmt.Println("  JWT Signing Key (HMAC-SHA256)")
	fmt.Println("=================================================")
	fmt.Println()
	fmt.Println("Generated key (base64):")
	fmt.Println(key)
	fmt.Println()
	fmt.Println("Add this to your config/private.yaml:")
	fmt.Printf("jwt_key: \"%s\"\n", key)
	fmt.Println()
	fmt.Println("or export it:")
	fmt.Printf("KANBAN_JWT_KEY=%s\n", key)
	fmt.Println()
	fmt.Println("IMPORTANT:")
	fmt.Println("- Rotating this key signs out every user!")
	fmt.Println("- Never commit this key to version control!")
	fmt.Println("=================================================")
}
