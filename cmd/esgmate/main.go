package main

import "github.com/nfrund/esgmate/cmd/esgmate/cmd"

func main() {
	cmd.Execute()
}
