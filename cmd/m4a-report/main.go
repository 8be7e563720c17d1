package main

import (
	"os"

	"github.com/ytget/m4a-report/internal/cli"
	"github.com/ytget/m4a-report/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	if err := cli.NewRootCommand(version, ui.Run).Execute(); err != nil {
		os.Exit(1)
	}
}
