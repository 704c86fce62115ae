package main

import "github.com/AzielCF/az-chatbox/cmd"

func main() {
	cmd.Execute()
}
