package main

import "github.com/ZacxDev/swampdocs/cmd"

func main() {
	cmd.Execute()
}
