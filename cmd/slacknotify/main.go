package main

import (
	"os"

	"github.com/randalmurphal/slacknotify/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
