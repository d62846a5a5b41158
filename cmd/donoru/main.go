package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "donoru",
		Usage: "Donor U landing page backend",
		Commands: []*cli.Command{
			serveCommand,
			seedCommand,
			applicationsCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("application failed")
	}
}
