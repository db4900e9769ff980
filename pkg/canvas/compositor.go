package canvas

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/srwiley/rasterx"
)

const (
	namesFontSize = 28
	dateFontSize  = 20
)

var (
	namesColor = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	dateColor  = color.NRGBA{R: 0x44, G: 0x44, B: 0x44, A: 0xff}
)

// ErrNoQRImage is returned when a scene has no QR raster.
var ErrNoQRImage = errors.New("scene has no QR image")

// BackgroundError reports a background that could not be loaded or decoded.
type BackgroundError struct {
	Ref string
	Err error
}

func (e *BackgroundError) Error() string {
	return fmt.Sprintf("background %q unavailable: %v", e.Ref, e.Err)
}

func (e *BackgroundError) Unwrap() error { return e.Err }

// Compositor flattens a Scene into one image. Each call draws on its own
// surface, so a Compositor may be shared.
type Compositor struct {
	loader AssetLoader
}

func NewCompositor(loader AssetLoader) *Compositor {
	return &Compositor{loader: loader}
}

// Render draws background, QR code, border and captions in that order. Each
// step starts only after the previous one has finished.
func (c *Compositor) Render(ctx context.Context, s Scene) (*image.NRGBA, error) {
	if s.QR == nil {
		return nil, ErrNoQRImage
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	custom := s.Customization.Normalized()
	layout := ComputeLayout(s.Template)
	w, h := layout.Surface.Dx(), layout.Surface.Dy()

	surface := imaging.New(w, h, backgroundColors[custom.Background])

	bg, err := c.loader.Load(ctx, s.Template.Background, w, h)
	if err != nil {
		return nil, &BackgroundError{Ref: s.Template.Background, Err: err}
	}
	if b := bg.Bounds(); b.Dx() != w || b.Dy() != h {
		bg = imaging.Resize(bg, w, h, imaging.Lanczos)
	}
	surface = imaging.Overlay(surface, bg, image.Pt(0, 0), 1.0)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	size := layout.QR.Dx()
	qr := s.QR
	if b := qr.Bounds(); b.Dx() != size || b.Dy() != size {
		qr = imaging.Resize(qr, size, size, imaging.NearestNeighbor)
	}
	surface = imaging.Overlay(surface, qr, layout.QR.Min, 1.0)

	drawBorder(surface, borderStyles[custom.Border])

	if !s.Template.Captions {
		return surface, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := fontFor(custom.Text)
	if err != nil {
		return nil, err
	}
	if err := drawCentered(surface, f, s.Event.Names(), namesFontSize, namesColor, layout.CenterX, layout.NamesY, layout.MaxTextWidth); err != nil {
		return nil, fmt.Errorf("draw names: %w", err)
	}
	if err := drawCentered(surface, f, s.Event.DateLabel(), dateFontSize, dateColor, layout.CenterX, layout.DateY, layout.MaxTextWidth); err != nil {
		return nil, fmt.Errorf("draw date: %w", err)
	}

	return surface, nil
}

// drawBorder fills a frame of the style's width along the surface edge.
func drawBorder(dst *image.NRGBA, style borderStyle) {
	if style.width <= 0 {
		return
	}
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	fw, fh, bw := float64(w), float64(h), float64(style.width)

	scanner := rasterx.NewScannerGV(w, h, dst, dst.Bounds())
	filler := rasterx.NewFiller(w, h, scanner)
	filler.SetColor(style.color)
	rasterx.AddRect(0, 0, fw, bw, 0, filler)
	rasterx.AddRect(0, fh-bw, fw, fh, 0, filler)
	rasterx.AddRect(0, bw, bw, fh-bw, 0, filler)
	rasterx.AddRect(fw-bw, bw, fw, fh-bw, 0, filler)
	filler.Draw()
}

// EncodePNG exports a rendered surface.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// DownloadFilename is the attachment name for an event's card.
func DownloadFilename(eventID string) string {
	return fmt.Sprintf("wedding-qr-%s.png", eventID)
}
