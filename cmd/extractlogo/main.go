package main

import (
	"fmt"
	"image"
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	brandkit "github.com/gcslaoli/brandkit-go"
)

// go run ./cmd/extractlogo
// go run ./cmd/extractlogo --size 512
// go run ./cmd/extractlogo --in banner.png --out icon.png

type options struct {
	input        string
	output       string
	size         uint
	outputBase64 bool
}

func newApp() *cli.App {
	var opts options

	app := cli.NewApp()

	app.Name = "extractlogo"
	app.Usage = "cut the logo out of the banner and save it as a square app icon"

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:        "in",
			Usage:       "path to the banner image",
			Value:       brandkit.DefaultBannerPath,
			Destination: &opts.input,
		},
		cli.StringFlag{
			Name:        "out",
			Usage:       "path of the PNG icon to write",
			Value:       brandkit.DefaultIconPath,
			Destination: &opts.output,
		},
		cli.UintFlag{
			Name:        "size",
			Usage:       "scale the icon to this side length (0 keeps the natural size)",
			Destination: &opts.size,
		},
		cli.BoolFlag{
			Name:        "outbase64",
			Usage:       "write the PNG as base64 to stdout instead of the output path",
			Destination: &opts.outputBase64,
		},
	}

	app.Action = func(c *cli.Context) error {
		return run(c, opts)
	}

	return app
}

func run(c *cli.Context, opts options) error {
	banner, format, err := brandkit.DecodeFile(opts.input)
	if err != nil {
		return err
	}

	icon, info, err := brandkit.ExtractIcon(banner, brandkit.DefaultExtractOptions())
	if err != nil {
		return errors.Wrap(err, "extract logo")
	}

	if info.Separator {
		log.Printf("Logo ends at column %d", info.LogoEnd)
	} else {
		log.Printf("No separator found, using the leftmost %d columns", info.LogoEnd)
	}

	var out image.Image = icon
	if opts.size > 0 {
		out, err = brandkit.ResizeSquare(icon, int(opts.size))
		if err != nil {
			return errors.Wrap(err, "resize icon")
		}
	}

	if opts.outputBase64 {
		encoded, err := brandkit.EncodePNGToBase64(out)
		if err != nil {
			return errors.Wrap(err, "encode base64 output")
		}
		fmt.Fprintln(c.App.Writer, encoded)
		log.Printf("Processed %s (%s) -> base64 [logo %v, icon %dpx]", opts.input, format, info.Bounds, out.Bounds().Dx())
		return nil
	}

	if err := brandkit.WritePNGFile(opts.output, out); err != nil {
		return err
	}

	log.Printf("Processed %s (%s) -> %s [logo %v, icon %dpx]", opts.input, format, opts.output, info.Bounds, out.Bounds().Dx())
	return nil
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
