package main

import "pipegen/cmd"

func main() {
	cmd.Execute()
}
