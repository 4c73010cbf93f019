package main

import "github.com/quocvuong92/chat-cli/cmd"

func main() {
	cmd.Execute()
}
