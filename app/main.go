package main

import "yumi/commands"

func main() {
	commands.Execute()
}
