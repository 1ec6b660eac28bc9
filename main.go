package main

import "github.com/chunklens/chunklens/cmd"

func main() {
	cmd.Execute()
}
