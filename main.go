package main

import "github.com/inovacc/giteabak/cmd"

func main() {
	cmd.Execute()
}
