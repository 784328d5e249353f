package main

import "github.com/memedex/memedex/cmd"

func main() {
	cmd.Execute()
}
