package main

import "github.com/whyisjake/today-tui/internal/cli"

func main() {
	cli.Execute()
}
