package qrcode

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strconv"
	"strings"

	"github.com/skip2/go-qrcode"
)

// Options controls how the module matrix is rasterized.
type Options struct {
	Width  int         // output edge in pixels, quiet zone included
	Margin int         // quiet zone in modules
	Dark   color.NRGBA // module colour
	Light  color.NRGBA // background colour; alpha 0 gives a transparent background
}

var (
	Black       = color.NRGBA{A: 0xff}
	White       = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	Transparent = color.NRGBA{}
)

// StandaloneOptions is used when the code is shown or downloaded on its own.
func StandaloneOptions() Options {
	return Options{Width: 400, Margin: 2, Dark: Black, Light: White}
}

// OverlayOptions is used when the code is layered onto a template.
func OverlayOptions() Options {
	return Options{Width: 512, Margin: 1, Dark: Black, Light: Transparent}
}

// Encoder produces QR rasters at Medium error correction.
type Encoder struct {
	level qrcode.RecoveryLevel
}

func NewEncoder() *Encoder {
	return &Encoder{level: qrcode.Medium}
}

// ErrEmptyPayload is returned for an empty payload.
var ErrEmptyPayload = errors.New("qr payload is empty")

// Encode renders payload into a Width x Width image. The result depends only
// on the arguments.
func (e *Encoder) Encode(payload string, opts Options) (*image.NRGBA, error) {
	if payload == "" {
		return nil, ErrEmptyPayload
	}

	q, err := qrcode.New(payload, e.level)
	if err != nil {
		return nil, fmt.Errorf("failed to encode QR payload: %w", err)
	}
	q.DisableBorder = true
	modules := q.Bitmap()

	if opts.Margin < 0 {
		opts.Margin = 0
	}
	total := len(modules) + 2*opts.Margin
	width := opts.Width
	if width < total {
		width = total
	}
	scale := float64(width) / float64(total)

	img := image.NewNRGBA(image.Rect(0, 0, width, width))
	for y := 0; y < width; y++ {
		row := int(float64(y)/scale) - opts.Margin
		for x := 0; x < width; x++ {
			col := int(float64(x)/scale) - opts.Margin
			c := opts.Light
			if row >= 0 && row < len(modules) && col >= 0 && col < len(modules) && modules[row][col] {
				c = opts.Dark
			}
			img.SetNRGBA(x, y, c)
		}
	}

	return img, nil
}

// EncodePNG is Encode followed by PNG encoding.
func (e *Encoder) EncodePNG(payload string, opts Options) ([]byte, error) {
	img, err := e.Encode(payload, opts)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to generate QR code PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// ParseHexColor accepts #RGB, #RRGGBB and #RRGGBBAA.
func ParseHexColor(s string) (color.NRGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid colour %q", s)
	}

	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid colour %q", s)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
