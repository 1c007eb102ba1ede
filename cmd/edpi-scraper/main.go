// Package main is the entry point for the edpi-scraper application
package main

import (
	"context"

	"github.com/jd499/valorant-pro-settings-scraper/cmd/edpi-scraper/commands"
)

// Version is set during build using ldflags
var (
	version = "dev"
)

func main() {
	commands.ExecuteContext(context.Background(), version)
}
