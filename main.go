package main

import "uniplayer/cmd"

func main() {
	cmd.Execute()
}
