// Package main is the entry point for the nba-shooting-scraper application
package main

import (
	"context"

	"github.com/myusername/nba-shooting-scraper/cmd/nba-shooting-scraper/commands"
)

// version is set during build using ldflags
var version = "dev"

func main() {
	commands.ExecuteContext(context.Background(), version)
}
