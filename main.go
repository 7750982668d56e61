package main

import "shireesh.com/switchgen/cmd"

func main() {
	cmd.Execute()
}
