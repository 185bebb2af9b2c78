package main

import "github.com/mcoot/othello-go/internal/cli"

func main() {
	cli.Execute()
}
