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

// go run ./cmd/blacktoalpha logo_black.png logo_banner.png
// go run ./cmd/blacktoalpha --threshold 32 scan.jpg scan.png
// go run ./cmd/blacktoalpha --outbase64 logo_black.png

type options struct {
	threshold    uint
	inputBase64  string
	outputBase64 bool
}

func newApp() *cli.App {
	var opts options

	app := cli.NewApp()

	app.Name = "blacktoalpha"
	app.Usage = "turn near-black pixels transparent and save the image as PNG"
	app.ArgsUsage = "SRC DST"

	app.Flags = []cli.Flag{
		cli.UintFlag{
			Name:        "threshold",
			Usage:       "pixels with red, green and blue all below this value become transparent",
			Value:       brandkit.DarknessThreshold,
			Destination: &opts.threshold,
		},
		cli.StringFlag{
			Name:        "inbase64",
			Usage:       "base64 image input (optionally a data URL) used instead of SRC",
			Destination: &opts.inputBase64,
		},
		cli.BoolFlag{
			Name:        "outbase64",
			Usage:       "write the PNG as base64 to stdout instead of DST",
			Destination: &opts.outputBase64,
		},
	}

	app.Action = func(c *cli.Context) error {
		return run(c, opts)
	}

	return app
}

func run(c *cli.Context, opts options) error {
	if opts.threshold > 255 {
		return errors.Errorf("threshold %d out of range [0, 255]", opts.threshold)
	}

	args := c.Args()
	if opts.inputBase64 != "" {
		// The positional arguments shift left when SRC comes from a flag.
		args = append(cli.Args{""}, args...)
	}

	want := 2
	if opts.outputBase64 {
		want = 1
	}
	if len(args) < want {
		return errors.Errorf("usage: %s [flags] %s", c.App.Name, c.App.ArgsUsage)
	}

	var (
		img    image.Image
		format string
		source string
		err    error
	)

	if opts.inputBase64 != "" {
		img, format, err = brandkit.DecodeBase64Image(opts.inputBase64)
		source = "base64"
	} else {
		source = args.Get(0)
		img, format, err = brandkit.DecodeFile(source)
	}
	if err != nil {
		return err
	}

	keyed, err := brandkit.KeyBlack(img, uint8(opts.threshold))
	if err != nil {
		return errors.Wrap(err, "key dark pixels")
	}

	if opts.outputBase64 {
		encoded, err := brandkit.EncodePNGToBase64(keyed)
		if err != nil {
			return errors.Wrap(err, "encode base64 output")
		}
		fmt.Fprintln(c.App.Writer, encoded)
		log.Printf("Processed %s (%s) -> base64 [threshold %d]", source, format, opts.threshold)
		return nil
	}

	outPath := args.Get(1)
	if err := brandkit.WritePNGFile(outPath, keyed); err != nil {
		return err
	}

	log.Printf("Processed %s (%s) -> %s [threshold %d]", source, format, outPath, opts.threshold)
	return nil
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
