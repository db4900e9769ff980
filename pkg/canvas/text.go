package canvas

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

var faceSources = map[string][]byte{
	TextDefault:     goregular.TTF,
	TextSerif:       gosmallcaps.TTF,
	TextHandwritten: goitalic.TTF,
}

var (
	parsedOnce  sync.Once
	parsedFonts map[string]*opentype.Font
	parseErr    error
)

func fontFor(style string) (*opentype.Font, error) {
	parsedOnce.Do(func() {
		parsedFonts = make(map[string]*opentype.Font, len(faceSources))
		for name, src := range faceSources {
			f, err := opentype.Parse(src)
			if err != nil {
				parseErr = fmt.Errorf("parse font %s: %w", name, err)
				return
			}
			parsedFonts[name] = f
		}
	})
	if parseErr != nil {
		return nil, parseErr
	}
	if f, ok := parsedFonts[style]; ok {
		return f, nil
	}
	return parsedFonts[TextDefault], nil
}

func newFace(f *opentype.Font, size float64) (font.Face, error) {
	return opentype.NewFace(f, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
}

// minFontSize is the floor fitSize stops at for text that cannot fit.
const minFontSize = 4.0

func measure(f *opentype.Font, text string, size float64) (int, error) {
	face, err := newFace(f, size)
	if err != nil {
		return 0, err
	}
	defer face.Close()
	return font.MeasureString(face, text).Ceil(), nil
}

// fitSize shrinks size until the hinted text measures at most maxWidth, the
// way a canvas squeezes text given a max width. It never grows the text.
func fitSize(f *opentype.Font, text string, size float64, maxWidth int) (float64, error) {
	if maxWidth <= 0 || text == "" {
		return size, nil
	}
	for {
		width, err := measure(f, text, size)
		if err != nil {
			return 0, err
		}
		if width <= maxWidth || size <= minFontSize {
			return size, nil
		}
		// Hinting makes width non-linear in size, so step at least a quarter point.
		next := size * float64(maxWidth) / float64(width)
		if next > size-0.25 {
			next = size - 0.25
		}
		size = math.Max(next, minFontSize)
	}
}

// drawCentered draws text with its horizontal centre at cx and its vertical
// middle at cy.
func drawCentered(dst draw.Image, f *opentype.Font, text string, size float64, col color.Color, cx, cy, maxWidth int) error {
	if text == "" {
		return nil
	}
	size, err := fitSize(f, text, size, maxWidth)
	if err != nil {
		return err
	}
	face, err := newFace(f, size)
	if err != nil {
		return err
	}
	defer face.Close()

	d := &font.Drawer{Dst: dst, Src: image.NewUniform(col), Face: face}
	width := d.MeasureString(text)
	m := face.Metrics()
	d.Dot = fixed.Point26_6{
		X: fixed.I(cx) - width/2,
		Y: fixed.I(cy) + (m.Ascent-m.Descent)/2,
	}
	d.DrawString(text)
	return nil
}
