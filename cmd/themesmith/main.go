package main

import "themesmith/internal/cli"

func main() {
	cli.Execute()
}
