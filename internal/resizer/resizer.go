// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package resizer resizes images and writes the result as a PNG next
// to the original file.
//
// The original file is never touched: the output name is derived from
// the input name, the requested dimensions, the mode and an optional
// suffix, and a counter is appended until the name does not collide
// with an existing file.
package resizer

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
)

// Mode selects how the image is fitted to the target dimensions.
type Mode string

// Available modes.
const (
	// ModeScale resamples to the target size, preserving the aspect
	// ratio.
	ModeScale = Mode("scale")
	// ModeCrop resamples and center-crops so the target box is filled
	// exactly.
	ModeCrop = Mode("crop")
	// ModePad scales the image to fit within the target box and
	// centers it on a canvas of exactly the target size, filled with
	// the background color.
	ModePad = Mode("pad")
	// ModeStretch resamples to the target size, ignoring the aspect
	// ratio.
	ModeStretch = Mode("stretch")
)

// DefaultBackground is the background used when Request.Background is
// nil: fully transparent white.
var DefaultBackground = color.NRGBA{R: 255, G: 255, B: 255, A: 0}

// Possible errors, used in tests.
var (
	errNoDimensions = errors.New("at least one of width or height must be set")
	errUnknownMode  = errors.New("unknown mode")
	errBadQuality   = errors.New("quality must be between 1 and 100")
)

// Request describes a single resize.
type Request struct {
	// Input is the path to the source image.
	Input string
	// Suffix is appended to the derived output name, if set.
	Suffix string
	// Width and Height are the target dimensions in pixels. A zero
	// value means the dimension is derived from the other one (or, in
	// stretch mode, taken from the original image). At least one must
	// be set.
	Width, Height int
	// Mode selects the fitting behavior. If empty, ModeScale is used.
	Mode Mode
	// Background fills the canvas in pad mode. If nil,
	// DefaultBackground is used.
	Background color.Color
	// Quality is the output quality, from 1 to 100. If zero, 95 is
	// used. PNG encoding is lossless, so quality only selects the
	// compression level.
	Quality int
}

func (r *Request) setDefaults() {
	if r.Mode == "" {
		r.Mode = ModeScale
	}
	if r.Background == nil {
		r.Background = DefaultBackground
	}
	if r.Quality == 0 {
		r.Quality = 95
	}
}

// Result describes a finished resize.
type Result struct {
	// Input is the original file, left untouched.
	Input string
	// Output is the file the resized image was written to.
	Output string
	// OriginalWidth and OriginalHeight are the dimensions of the
	// input image.
	OriginalWidth, OriginalHeight int
	// Width and Height are the dimensions of the output image.
	Width, Height int
}

// Resize reads the image at req.Input, resizes it according to req and
// writes the result as a PNG to a freshly derived path. No output file
// is created when validation fails.
func Resize(req *Request) (*Result, error) {
	req.setDefaults()

	if req.Width == 0 && req.Height == 0 {
		return nil, errNoDimensions
	}
	if req.Quality < 1 || req.Quality > 100 {
		return nil, fmt.Errorf("%w, got %d", errBadQuality, req.Quality)
	}

	src, err := imaging.Open(req.Input)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", req.Input, err)
	}
	ow, oh := src.Bounds().Dx(), src.Bounds().Dy()

	var out *image.NRGBA
	switch req.Mode {
	case ModeScale:
		w, h := fitDimensions(ow, oh, req.Width, req.Height)
		out = imaging.Resize(src, w, h, imaging.Lanczos)
	case ModeCrop:
		w, h := boxDimensions(ow, oh, req.Width, req.Height)
		out = imaging.Fill(src, w, h, imaging.Center, imaging.Lanczos)
	case ModePad:
		w, h := boxDimensions(ow, oh, req.Width, req.Height)
		fw, fh := fitDimensions(ow, oh, w, h)
		canvas := imaging.New(w, h, req.Background)
		out = imaging.PasteCenter(canvas, imaging.Resize(src, fw, fh, imaging.Lanczos))
	case ModeStretch:
		w, h := boxDimensions(ow, oh, req.Width, req.Height)
		out = imaging.Resize(src, w, h, imaging.Lanczos)
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownMode, req.Mode)
	}

	// Always encode as PNG, even when the input extension says
	// otherwise: the derived name keeps the input extension, but the
	// output format doesn't. Encoding into a buffer first keeps a
	// failed encode from leaving a partial file behind.
	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: compressionFor(req.Quality)}
	if err := enc.Encode(&buf, out); err != nil {
		return nil, fmt.Errorf("encoding: %w", err)
	}
	outPath := derivePath(req)
	if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
		return nil, err
	}

	return &Result{
		Input:          req.Input,
		Output:         outPath,
		OriginalWidth:  ow,
		OriginalHeight: oh,
		Width:          out.Bounds().Dx(),
		Height:         out.Bounds().Dy(),
	}, nil
}

// fitDimensions returns the largest dimensions that fit within the
// requested box while preserving the source aspect ratio. A missing
// dimension is derived from the given one.
func fitDimensions(ow, oh, w, h int) (int, int) {
	switch {
	case w > 0 && h > 0:
		ratio := math.Min(float64(w)/float64(ow), float64(h)/float64(oh))
		return int(float64(ow) * ratio), int(float64(oh) * ratio)
	case w > 0:
		return w, oh * w / ow
	default:
		return ow * h / oh, h
	}
}

// boxDimensions returns the requested dimensions, substituting the
// original length for a missing axis.
func boxDimensions(ow, oh, w, h int) (int, int) {
	if w == 0 {
		w = ow
	}
	if h == 0 {
		h = oh
	}
	return w, h
}

// derivePath builds the output path next to the input, tagged with the
// requested dimensions, mode and suffix, appending a counter until the
// path does not point to an existing file.
func derivePath(req *Request) string {
	dir, base := filepath.Split(req.Input)
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)

	var tag string
	switch {
	case req.Width > 0 && req.Height > 0:
		tag = fmt.Sprintf("_%dx%d", req.Width, req.Height)
	case req.Width > 0:
		tag = fmt.Sprintf("_w%d", req.Width)
	case req.Height > 0:
		tag = fmt.Sprintf("_h%d", req.Height)
	}
	if req.Mode != ModeScale {
		tag += "_" + string(req.Mode)
	}
	if req.Suffix != "" {
		tag += "_" + req.Suffix
	}

	path := filepath.Join(dir, name+tag+ext)
	for n := 1; ; n++ {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path
		}
		path = filepath.Join(dir, fmt.Sprintf("%s%s_%d%s", name, tag, n, ext))
	}
}

// compressionFor maps the 1-100 quality setting onto PNG compression
// levels: higher quality spends more effort on compression.
func compressionFor(quality int) png.CompressionLevel {
	switch {
	case quality >= 67:
		return png.BestCompression
	case quality >= 34:
		return png.DefaultCompression
	}
	return png.BestSpeed
}

// ParseBackground parses a background color in "R,G,B" or "R,G,B,A"
// form, with each channel in [0,255]. Alpha defaults to 255 when
// omitted.
func ParseBackground(s string) (color.NRGBA, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return color.NRGBA{}, fmt.Errorf("malformed background color %q", s)
	}
	vals := [4]int{0, 0, 0, 255}
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("malformed background color %q", s)
		}
		if n < 0 || n > 255 {
			return color.NRGBA{}, fmt.Errorf("background channel out of range in %q", s)
		}
		vals[i] = n
	}
	return color.NRGBA{
		R: uint8(vals[0]),
		G: uint8(vals[1]),
		B: uint8(vals[2]),
		A: uint8(vals[3]),
	}, nil
}
