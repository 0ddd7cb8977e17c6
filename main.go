package main

import "github.com/debanjanofficial/netfolio/cmd"

func main() {
	cmd.Execute()
}
