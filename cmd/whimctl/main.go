package main

import "github.com/whimword/whimword/internal/cli"

func main() {
	cli.Execute()
}
