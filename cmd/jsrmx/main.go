package main

import (
	"context"

	"github.com/scott-cotton/cli"
)

func main() {
	setupLogging()
	cli.MainContext(context.Background(), MainCommand())
}
