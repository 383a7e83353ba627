// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Png2ico converts an image into a multi-resolution Windows ICO file.

# Usage

	$ png2ico [flags...] <input>

The input image is decoded, resized to every requested size with a
Lanczos filter and packed into a single ICO file, in the order the
sizes were given. The first size becomes the primary embedded image.

By default the output file is written next to the input, with the
extension replaced by ".ico":

	$ png2ico app.png
	Success: app.png -> app.ico
	Sizes: 16x16, 32x32, 48x48, 64x64, 128x128, 256x256

Custom sizes and output path:

	$ png2ico -s 512 -o jlcAssistant512.ico jlcAssistant512.png
*/
package main

import (
	_ "embed"

	"go.astrophena.name/base/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
