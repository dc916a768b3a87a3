package main

import "github.com/aalvaropc/promptloop/internal/cli"

func main() {
	cli.Execute()
}
