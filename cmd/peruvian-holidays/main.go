package main

import "github.com/cristianbgp/peruvian-holidays/internal/cli"

func main() {
	cli.Execute()
}
