package main

import "github.com/devicelab-dev/locator/pkg/cli"

func main() {
	cli.Execute()
}
