// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"flag"
	"fmt"

	"go.astrophena.name/base/cli"
	"go.astrophena.name/imgtool/internal/icopack"
)

func main() { cli.Main(new(app)) }

type app struct {
	output string
	sizes  string
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.StringVar(&a.output, "output", "", "Output ICO `path`. Defaults to the input path with an .ico extension.")
	fs.StringVar(&a.output, "o", "", "Shorthand for -output.")
	fs.StringVar(&a.sizes, "sizes", "16,32,48,64,128,256", "Comma-separated icon `sizes`, each embedded as a square.")
	fs.StringVar(&a.sizes, "s", "16,32,48,64,128,256", "Shorthand for -sizes.")
}

func (a *app) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)

	if len(env.Args) != 1 {
		return fmt.Errorf("%w: want input image path", cli.ErrInvalidArgs)
	}

	sizes, err := icopack.ParseSizes(a.sizes)
	if err != nil {
		return fmt.Errorf("%w: %v", cli.ErrInvalidArgs, err)
	}

	res, err := icopack.Convert(&icopack.Config{
		Input:  env.Args[0],
		Output: a.output,
		Sizes:  sizes,
	})
	if err != nil {
		return err
	}

	if len(res.Skipped) > 0 {
		fmt.Fprintf(env.Stderr, "Skipped sizes larger than %d: %s\n", icopack.MaxSize, icopack.FormatSizes(res.Skipped))
	}
	fmt.Fprintf(env.Stdout, "Success: %s -> %s\n", res.Input, res.Output)
	fmt.Fprintf(env.Stdout, "Sizes: %s\n", icopack.FormatSizes(res.Sizes))

	return nil
}
