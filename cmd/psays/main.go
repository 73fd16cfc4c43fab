package main

import "github.com/Bli-AIk/pixel-says/cmd/psays/cmd"

func main() {
	cmd.Execute()
}
