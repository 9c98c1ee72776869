package main

import "github.com/chriserin/gwt/cmd"

func main() {
	cmd.Execute()
}
