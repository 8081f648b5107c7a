package main

import "github.com/notargets/nastomesh/cmd"

func main() {
	cmd.Execute()
}
