package main

import "github.com/halfdim/progen/cmd"

func main() {
	cmd.Execute()
}
