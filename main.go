package main

import "github.com/lockmeow/lockmeow/cmd"

func main() {
	cmd.Execute()
}
