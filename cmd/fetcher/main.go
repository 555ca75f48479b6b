package main

import (
	"fmt"
	"os"

	"gopkg.in/urfave/cli.v1"

	"github.com/andrewyi/fetcher/src/server"
)

func main() {
	// -v 用于verbosity
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version, V",
		Usage: "print the version",
	}

	app := cli.NewApp()

	app.Name = "fetcher"
	app.Version = "0.1.0"
	app.Usage = "download the resources listed in a file, one url per line"
	app.Flags = server.Flags()

	s := server.NewServer()
	app.Action = s.Start

	err := app.Run(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
