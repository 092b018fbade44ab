package main

import "github.com/nasalprom/nasalprom/cmd"

func main() {
	cmd.Execute()
}
