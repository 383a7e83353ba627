// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"flag"
	"fmt"
	"io"

	"go.astrophena.name/base/cli"
	"go.astrophena.name/imgtool/internal/resizer"
)

func main() { cli.Main(new(app)) }

type app struct {
	suffix     string
	width      int
	height     int
	mode       string
	background string
	quality    int
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.StringVar(&a.suffix, "suffix", "", "Append `string` to the derived output name.")
	fs.StringVar(&a.suffix, "s", "", "Shorthand for -suffix.")
	fs.IntVar(&a.width, "width", 0, "Target width in `pixels`.")
	fs.IntVar(&a.width, "W", 0, "Shorthand for -width.")
	fs.IntVar(&a.height, "height", 0, "Target height in `pixels`.")
	fs.IntVar(&a.height, "H", 0, "Shorthand for -height.")
	fs.StringVar(&a.mode, "mode", "scale", "Resize `mode`: scale, crop, pad or stretch.")
	fs.StringVar(&a.mode, "m", "scale", "Shorthand for -mode.")
	fs.StringVar(&a.background, "background", "255,255,255,0", "Background `color` (\"R,G,B\" or \"R,G,B,A\") used by pad mode.")
	fs.StringVar(&a.background, "bg", "255,255,255,0", "Shorthand for -background.")
	fs.IntVar(&a.quality, "quality", 95, "Output `quality`, from 1 to 100.")
	fs.IntVar(&a.quality, "q", 95, "Shorthand for -quality.")
}

func (a *app) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)

	if len(env.Args) != 1 {
		return fmt.Errorf("%w: want input image path", cli.ErrInvalidArgs)
	}

	req, err := a.request(env.Args[0], env.Stderr)
	if err != nil {
		return err
	}

	res, err := resizer.Resize(req)
	if err != nil {
		return err
	}

	fmt.Fprintf(env.Stdout, "Original kept: %s\n", res.Input)
	fmt.Fprintf(env.Stdout, "Resized image: %s\n", res.Output)
	fmt.Fprintf(env.Stdout, "Original size: %dx%d\n", res.OriginalWidth, res.OriginalHeight)
	fmt.Fprintf(env.Stdout, "New size: %dx%d\n", res.Width, res.Height)

	return nil
}

// request validates the flag values and builds the resize request.
// Warnings about recoverable flag values are written to warnw.
func (a *app) request(input string, warnw io.Writer) (*resizer.Request, error) {
	// The flag default is 95, so a zero here can only come from an
	// explicit -q 0, which is rejected instead of being silently
	// promoted to the default.
	if a.quality < 1 || a.quality > 100 {
		return nil, fmt.Errorf("%w: quality must be between 1 and 100, got %d", cli.ErrInvalidArgs, a.quality)
	}

	bg, err := resizer.ParseBackground(a.background)
	if err != nil {
		// A malformed background color is not fatal: fall back to the
		// default transparent background and continue.
		fmt.Fprintf(warnw, "%v, using default transparent background\n", err)
		bg = resizer.DefaultBackground
	}

	return &resizer.Request{
		Input:      input,
		Suffix:     a.suffix,
		Width:      a.width,
		Height:     a.height,
		Mode:       resizer.Mode(a.mode),
		Background: bg,
		Quality:    a.quality,
	}, nil
}
