package main

import (
	"github.com/jjtimmons/seqlab/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
