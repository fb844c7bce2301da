package main

import "github.com/sdkgate/sdkgate/internal/cli"

func main() {
	cli.Execute()
}
