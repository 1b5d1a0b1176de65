package main

import (
	"cyber-savior/cli"
)

func main() {
	cli.Start()
}
