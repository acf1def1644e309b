package cmd

import (
	"log"
	"os"

	App "keel/app"

	"github.com/urfave/cli"
)

func Execute(name, usage, version, commit string) {
	app := cli.NewApp()
	app.Name = name
	app.Usage = usage
	app.Version = version
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:  "config, c",
			Value: "config.yaml",
			Usage: "Configuration file path",
		},
		&cli.StringFlag{
			Name:  "listen, l",
			Usage: "Listen address, overrides the configuration file",
		},
		&cli.StringFlag{
			Name:  "data-dir, d",
			Usage: "Data directory root, overrides the configuration file",
		},
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "Enable debug logging",
		},
	}
	app.Action = App.Run

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
