package main

import "github.com/valpere/aztran/cmd"

func main() {
	cmd.Execute()
}
