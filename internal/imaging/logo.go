// Package imaging normalizes uploaded company logos.
package imaging

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	"github.com/pkg/errors"
	"golang.org/x/image/draw"
)

const (
	MaxUploadBytes = 5 << 20
	LogoSize       = 512

	ContentType = "image/webp"
)

var ErrUnsupported = errors.New("unsupported image")

// ToWebPLogo decodes a jpeg, png or webp image, fits it inside a
// LogoSize square keeping the aspect ratio and re-encodes it as WebP.
func ToWebPLogo(r io.Reader) ([]byte, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, errors.Wrap(ErrUnsupported, err.Error())
	}

	dst := Fit(src, LogoSize)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, dst, &webp.Options{Quality: 85}); err != nil {
		return nil, errors.Wrap(err, "encode webp")
	}
	return buf.Bytes(), nil
}

// Fit scales src down so both sides are at most max. Smaller images are
// returned unchanged.
func Fit(src image.Image, max int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= max && h <= max {
		return src
	}

	nw, nh := max, max
	if w > h {
		nh = h * max / w
	} else {
		nw = w * max / h
	}
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
