package main

import "github.com/parthshah1/tzc/cmd"

func main() {
	cmd.Execute()
}
