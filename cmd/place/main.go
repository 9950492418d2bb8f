package main

import "github.com/OpenTraceLab/OpenPlace/cmd/place/cmd"

func main() {
	cmd.Execute()
}
