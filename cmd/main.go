package main

import (
	"fmt"
	"os"

	"github.com/HaxnovR/spotisave/internal/actions"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

func main() {
	// Credentials may live in a local .env file.
	godotenv.Load()

	app := &cli.App{
		Name:      "spotisave",
		Usage:     "Spotisave saves public Spotify playlist metadata to CSV or Excel files.",
		ArgsUsage: "<spotify playlist or user URL>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "xls",
				Usage: "also write an .xlsx workbook next to each CSV",
			},
			&cli.StringFlag{
				Name:  "out",
				Value: ".",
				Usage: "base directory for the exported files",
			},
		},
		Action: actions.Export,
	}

	err := app.Run(os.Args)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
