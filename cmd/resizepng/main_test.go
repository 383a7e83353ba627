// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"bytes"
	"errors"
	"image/color"
	"io"
	"strings"
	"testing"

	"go.astrophena.name/base/cli"
	"go.astrophena.name/base/testutil"
	"go.astrophena.name/imgtool/internal/resizer"
)

func TestRequestRejectsBadQuality(t *testing.T) {
	for _, quality := range []int{0, -1, 101} {
		a := &app{width: 300, mode: "scale", background: "255,255,255,0", quality: quality}
		if _, err := a.request("a.png", io.Discard); !errors.Is(err, cli.ErrInvalidArgs) {
			t.Fatalf("quality %d: got %v, want cli.ErrInvalidArgs", quality, err)
		}
	}
}

func TestRequestBackgroundFallback(t *testing.T) {
	var warnings bytes.Buffer

	a := &app{width: 300, mode: "scale", background: "abc", quality: 95}
	req, err := a.request("a.png", &warnings)
	if err != nil {
		t.Fatal(err)
	}
	bg, ok := req.Background.(color.NRGBA)
	if !ok {
		t.Fatalf("background is %T, want color.NRGBA", req.Background)
	}
	testutil.AssertEqual(t, bg, resizer.DefaultBackground)
	if !strings.Contains(warnings.String(), "default transparent background") {
		t.Fatalf("want a fallback warning, got %q", warnings.String())
	}

	// A well-formed background produces no warning.
	warnings.Reset()
	a.background = "0,0,0,0"
	if _, err := a.request("a.png", &warnings); err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, warnings.String(), "")
}
