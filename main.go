package main

import "github.com/dannygar/NLWeb/cmd"

func main() {
	cmd.Execute()
}
