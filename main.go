package main

import "github.com/alexiusacademia/goscwb/cmd"

func main() {
	cmd.Execute()
}
