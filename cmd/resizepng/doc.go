// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Resizepng resizes an image and writes the result as a PNG, keeping the
original file.

# Usage

	$ resizepng [flags...] <input>

At least one of -W (width) or -H (height) is required. The output is
written next to the input, with a name derived from the requested
dimensions, the mode and the optional suffix; a counter is appended
when the name is already taken, so nothing is ever overwritten.

Scale proportionally (the missing dimension is derived from the
original aspect ratio):

	$ resizepng -W 300 input.png
	$ resizepng -H 200 input.png

Stretch to exact dimensions, ignoring the aspect ratio:

	$ resizepng -W 300 -H 200 -m stretch input.png

Crop to exactly fill the given box, trimming equally from opposite
edges:

	$ resizepng -W 300 -H 200 -m crop input.png

Pad to the given box, centering the scaled image on a transparent
canvas:

	$ resizepng -W 500 -H 500 -m pad -bg 0,0,0,0 input.png
*/
package main

import (
	_ "embed"

	"go.astrophena.name/base/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
