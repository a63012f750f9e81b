package main

import (
	"fmt"
	"log"
	"os"

	"github.com/jdhaene/canvcf/canvcf_api"
	cli "github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:            "canvcf",
		Usage:           "A tool to merge per-sample CNV segment calls into one multi-sample VCF file",
		HideHelpCommand: true,
		Version:         "0.1.0dev",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "genome",
				Aliases:  []string{"g"},
				Usage:    "The genome reference index (.fai) defining the contig order",
				Required: true,
				Category: "Required",
			},
			&cli.StringFlag{
				Name:     "manifest",
				Aliases:  []string{"m"},
				Usage:    "Run manifest (YAML) listing the samples and their segment call files",
				Required: true,
				Category: "Required",
			},
			&cli.StringFlag{
				Name:     "output",
				Aliases:  []string{"o"},
				Usage:    "The location of the output VCF file, defaults to stdout. A .gz suffix enables bgzip compression",
				Category: "Optional",
			},
			&cli.IntFlag{
				Name:     "quality-threshold",
				Aliases:  []string{"q"},
				Usage:    "The quality threshold named by the qN filter",
				Value:    10,
				Category: "Optional",
				Action: func(c *cli.Context, input int) error {
					if input < 0 {
						return cli.Exit(fmt.Sprintf("Invalid quality threshold %d, must not be negative", input), 1)
					}
					return nil
				},
			},
			&cli.IntFlag{
				Name:     "denovo-quality-threshold",
				Aliases:  []string{"dq"},
				Usage:    "The de novo quality threshold. Setting it enables the DQ format field",
				Category: "Optional",
				Action: func(c *cli.Context, input int) error {
					if input < 0 {
						return cli.Exit(fmt.Sprintf("Invalid de novo quality threshold %d, must not be negative", input), 1)
					}
					return nil
				},
			},
		},
		Action: func(Cctx *cli.Context) error {
			return canvcf_api.Execute(Cctx) // Load the inputs and write the VCF file
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.New(os.Stderr, "", 0).Fatal(err)
	}
}
