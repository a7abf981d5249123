package main

import "github.com/devicelab-dev/uitestext/pkg/cli"

func main() {
	cli.Execute()
}
