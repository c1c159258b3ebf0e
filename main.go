package main

import "github.com/theirongolddev/cryptosave/cmd"

func main() {
	cmd.Execute()
}
