package main

import "github.com/Paintersrp/polite/internal/cli"

func main() {
	cli.Execute()
}
