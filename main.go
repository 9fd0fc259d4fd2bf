package main

import (
	"github.com/maxcabd/custom-card-parser/cli"
)

func main() {
	cli.Start()
}
