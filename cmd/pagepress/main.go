package main

import (
	"github.com/custodia-labs/pagepress-cli/internal/adapters/driving/cli"
)

func main() {
	cli.Execute()
}
