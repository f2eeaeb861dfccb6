package main

import "github.com/nevisdale/chip8vm/cmd"

func main() {
	cmd.Execute()
}
