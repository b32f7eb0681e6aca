package main

import "github.com/HalfToothed/gostman-site/cmd"

func main() {
	cmd.Execute()
}
