// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package icopack converts images into multi-resolution Windows ICO files.
//
// An ICO file holds several bitmaps at different resolutions; the
// operating system picks the best match at render time. Convert
// produces one Lanczos-resized variant per requested size and packs
// them into a single container, with the first entry acting as the
// primary image.
package icopack

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	ico "github.com/sergeymakinen/go-ico"
)

// MaxSize is the largest dimension an ICO directory entry can hold:
// the format stores width and height in single bytes, with zero
// meaning 256.
const MaxSize = 256

// DefaultSizes are the sizes embedded when Config.Sizes is nil.
// Entries larger than MaxSize are skipped at conversion time.
var DefaultSizes = []image.Point{
	{X: 16, Y: 16},
	{X: 32, Y: 32},
	{X: 48, Y: 48},
	{X: 64, Y: 64},
	{X: 128, Y: 128},
	{X: 256, Y: 256},
	{X: 512, Y: 512},
}

// Possible errors, used in tests.
var errNoUsableSizes = errors.New("no sizes of 256 pixels or smaller")

// Config represents a conversion configuration.
type Config struct {
	// Input is the path to the source image. It can be in any format
	// the imaging library decodes.
	Input string
	// Output is the path of the resulting ICO file. If empty, the
	// input path with its extension replaced by ".ico" is used.
	Output string
	// Sizes are the sizes to embed, in order. The first entry becomes
	// the primary image. If nil, DefaultSizes is used.
	Sizes []image.Point
}

func (c *Config) setDefaults() {
	if c.Output == "" {
		c.Output = strings.TrimSuffix(c.Input, filepath.Ext(c.Input)) + ".ico"
	}
	if c.Sizes == nil {
		c.Sizes = DefaultSizes
	}
}

// Result describes a finished conversion.
type Result struct {
	// Input and Output are the paths the conversion read and wrote.
	Input, Output string
	// Sizes are the sizes embedded in the output, in order.
	Sizes []image.Point
	// Skipped are requested sizes larger than MaxSize, left out of
	// the output.
	Skipped []image.Point
}

// Convert reads the image at cfg.Input, resizes it to every size in
// cfg.Sizes and writes all variants into a single ICO file.
//
// Each variant is resized to exactly its requested dimensions; no
// aspect ratio is preserved at this stage. Sizes larger than MaxSize
// cannot be represented in an ICO directory and are skipped; they are
// reported in Result.Skipped. No output file is created on failure.
func Convert(cfg *Config) (*Result, error) {
	cfg.setDefaults()

	var sizes, skipped []image.Point
	for _, size := range cfg.Sizes {
		if size.X > MaxSize || size.Y > MaxSize {
			skipped = append(skipped, size)
			continue
		}
		sizes = append(sizes, size)
	}
	if len(sizes) == 0 {
		return nil, errNoUsableSizes
	}

	src, err := imaging.Open(cfg.Input)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", cfg.Input, err)
	}
	// ICO entries need an alpha channel.
	img := imaging.Clone(src)

	variants := make([]image.Image, 0, len(sizes))
	for _, size := range sizes {
		variants = append(variants, imaging.Resize(img, size.X, size.Y, imaging.Lanczos))
	}

	var buf bytes.Buffer
	if err := ico.EncodeAll(&buf, variants); err != nil {
		return nil, fmt.Errorf("encoding %s: %w", cfg.Output, err)
	}
	if err := os.WriteFile(cfg.Output, buf.Bytes(), 0o644); err != nil {
		return nil, err
	}

	return &Result{
		Input:   cfg.Input,
		Output:  cfg.Output,
		Sizes:   sizes,
		Skipped: skipped,
	}, nil
}

// ParseSizes parses a comma-separated list of integers, e.g.
// "16,32,64", into square sizes. Entries must be positive; duplicates
// are permitted and simply produce redundant variants.
func ParseSizes(s string) ([]image.Point, error) {
	var sizes []image.Point
	for part := range strings.SplitSeq(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid size %q", part)
		}
		if n <= 0 {
			return nil, fmt.Errorf("size must be positive, got %d", n)
		}
		sizes = append(sizes, image.Point{X: n, Y: n})
	}
	return sizes, nil
}

// FormatSizes returns a human-readable representation of sizes, e.g.
// "16x16, 32x32".
func FormatSizes(sizes []image.Point) string {
	var sb strings.Builder
	for i, size := range sizes {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%dx%d", size.X, size.Y)
	}
	return sb.String()
}
