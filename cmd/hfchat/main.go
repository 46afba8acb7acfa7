package main

import "github.com/diogo/hfchat/internal/commands"

func main() {
	commands.Execute()
}
