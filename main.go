package main

import "github.com/jjtimmons/reassemble/cmd"

func main() {
	cmd.Execute() // initialize cobra commands
}
