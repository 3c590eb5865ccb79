package main

import (
	"github.com/all-dot-files/tick/internal/cli"
)

func main() {
	cli.Execute()
}
