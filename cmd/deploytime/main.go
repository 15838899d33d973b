package main

import (
	"github.com/vietddude/deploytime/internal/cli"
)

func main() {
	cli.Execute()
}
