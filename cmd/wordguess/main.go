package main

import "github.com/mcoot/wordguess/internal/cli"

func main() {
	cli.Execute()
}
