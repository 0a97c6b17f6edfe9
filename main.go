package main

import "github.com/wastenot/wastenot-cli/cmd/wastenot"

func main() {
	wastenot.Execute()
}
