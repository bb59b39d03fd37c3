package main

import "github.com/iksnae/zwift-workout/cmd"

func main() {
	cmd.Execute()
}
