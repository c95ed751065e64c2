package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/bookishbrew/bookstore/internal/cli"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	// Optional .env file; environment variables win over it.
	_ = godotenv.Load()

	if err := cli.NewRootCommand(Version).Execute(); err != nil {
		os.Exit(1)
	}
}
