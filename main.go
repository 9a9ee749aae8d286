package main

import "github.com/gaurav-prasanna/helpsite/cmd"

func main() {
	cmd.Execute()
}
