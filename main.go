package main

import "github.com/sepayvn/sepay-bankhub-go/cmd"

func main() {
	cmd.Execute()
}
