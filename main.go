package main

import (
	"os"

	"github.com/hannes-wan/pcap-editor/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
