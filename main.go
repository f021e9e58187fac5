package main

import "github.com/inovacc/repojump/cmd"

func main() {
	cmd.Execute()
}
