package main

import "github.com/sadopc/workday/internal/cli"

func main() {
	cli.Execute()
}
