package main

import "github.com/CellarBytes/vinoscope-cli/cmd"

func main() {
	cmd.Execute()
}
