package main

import "zipf/internal/cli"

func main() {
	cli.Execute()
}
