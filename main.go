package main

import "countdown_tui/cmd"

func main() {
	cmd.Execute()
}
