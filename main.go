package main

import "github.com/qaforge/patloc/cmd"

func main() {
	cmd.Execute()
}
