package main

import "github.com/arl/wiretile/cmd/wiretile/cmd"

func main() {
	cmd.Execute()
}
