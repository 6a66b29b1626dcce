package main

import "github.com/ephellon/gamecatalog/cmd"

var execute = cmd.Execute

func main() {
	execute()
}
