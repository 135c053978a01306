package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/programme-lv/console/mockoj"
)

func main() {
	_ = godotenv.Load()

	address := flag.String("address", ":8080", "listen address")
	flag.Parse()

	jwtKey := os.Getenv("JWT_KEY")
	if jwtKey == "" {
		jwtKey = "mockoj-dev-key"
	}

	fmt.Printf("mockoj listening on %s\n", *address)
	srv := mockoj.NewServer([]byte(jwtKey))
	if err := srv.Start(*address); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
