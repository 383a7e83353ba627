// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package imgtool holds two small image command-line tools: png2ico,
// which packs an image into a multi-resolution Windows ICO file, and
// resizepng, which resizes an image and writes the result as a PNG
// next to the original.
//
// See the cmd directory for the tools themselves and the internal
// packages for the underlying libraries.
package imgtool
