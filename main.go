package main

import "github.com/theirongolddev/automarket/cmd"

func main() {
	cmd.Execute()
}
