package main

import "github.com/rnwolfe/studyplan/cmd"

func main() {
	cmd.Execute()
}
