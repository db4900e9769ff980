package canvas

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	black = color.NRGBA{A: 0xff}
	red   = color.NRGBA{R: 0xff, A: 0xff}
)

func solidQR(size int, c color.NRGBA) *image.NRGBA {
	return imaging.New(size, size, c)
}

func testScene(tpl Template) Scene {
	return Scene{
		Template:      tpl,
		Customization: Customization{Background: BackgroundWhite, Border: BorderNone, Text: TextDefault},
		Event: EventDisplay{
			Partner1Name: "Adeline",
			Partner2Name: "Alexander",
			WeddingDate:  time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC),
		},
		QR: solidQR(512, black),
	}
}

type failingLoader struct{ err error }

func (f failingLoader) Load(context.Context, string, int, int) (image.Image, error) {
	return nil, f.err
}

func TestComputeLayout(t *testing.T) {
	l := ComputeLayout(Template{Width: 320, Height: 500, QR: QRRect{X: 40, Y: 40, Size: 240}})

	assert.Equal(t, image.Rect(0, 0, 320, 500), l.Surface)
	assert.Equal(t, image.Rect(40, 40, 280, 280), l.QR)
	assert.Equal(t, 160, l.CenterX)
	assert.Equal(t, 310, l.NamesY)
	assert.Equal(t, 345, l.DateY)
	assert.Equal(t, 224, l.MaxTextWidth)
}

func TestComputeLayout_Defaults(t *testing.T) {
	l := ComputeLayout(Template{QR: QRRect{X: 10, Y: 20}})

	assert.Equal(t, image.Rect(0, 0, DefaultWidth, DefaultHeight), l.Surface)
	assert.Equal(t, DefaultQRSize, l.QR.Dx())
	assert.Equal(t, 10+DefaultQRSize/2, l.CenterX)
	assert.Equal(t, 20+DefaultQRSize+30, l.NamesY)
}

func TestRegistry(t *testing.T) {
	all := Templates()
	require.Len(t, all, 6)

	for _, tpl := range all {
		assert.Equal(t, DefaultWidth, tpl.Width, tpl.ID)
		assert.Equal(t, DefaultHeight, tpl.Height, tpl.ID)
		assert.Equal(t, QRRect{X: 40, Y: 40, Size: 240}, tpl.QR, tpl.ID)
		assert.True(t, tpl.Captions, tpl.ID)
	}

	floral, ok := Lookup("floral")
	require.True(t, ok)
	assert.Equal(t, "Floral", floral.Name)

	_, ok = Lookup("missing")
	assert.False(t, ok)
	assert.Equal(t, DefaultTemplateID, LookupOrDefault("missing").ID)

	all[0].ID = "mutated"
	_, ok = Lookup("mutated")
	assert.False(t, ok)
}

func TestEmbeddedBackgroundsLoad(t *testing.T) {
	loader := NewEmbeddedLoader()
	for _, tpl := range Templates() {
		img, err := loader.Load(context.Background(), tpl.Background, tpl.Width, tpl.Height)
		require.NoError(t, err, tpl.ID)
		assert.Equal(t, tpl.Width, img.Bounds().Dx(), tpl.ID)
		assert.Equal(t, tpl.Height, img.Bounds().Dy(), tpl.ID)
	}
}

func TestRender_DrawsQRAtRectangle(t *testing.T) {
	tpl, _ := Lookup("classic")
	out, err := NewCompositor(NewEmbeddedLoader()).Render(context.Background(), testScene(tpl))
	require.NoError(t, err)

	assert.Equal(t, image.Rect(0, 0, 320, 500), out.Bounds())
	assert.Equal(t, black, out.NRGBAAt(40, 40))
	assert.Equal(t, black, out.NRGBAAt(279, 279))
	assert.NotEqual(t, black, out.NRGBAAt(280, 280))
}

func TestRender_Deterministic(t *testing.T) {
	tpl, _ := Lookup("floral")
	c := NewCompositor(NewEmbeddedLoader())

	first, err := c.Render(context.Background(), testScene(tpl))
	require.NoError(t, err)
	second, err := c.Render(context.Background(), testScene(tpl))
	require.NoError(t, err)

	a, err := EncodePNG(first)
	require.NoError(t, err)
	b, err := EncodePNG(second)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(a, b))
}

func TestRender_Captions(t *testing.T) {
	tpl, _ := Lookup("classic")
	c := NewCompositor(NewEmbeddedLoader())

	with, err := c.Render(context.Background(), testScene(tpl))
	require.NoError(t, err)

	tpl.Captions = false
	without, err := c.Render(context.Background(), testScene(tpl))
	require.NoError(t, err)

	changed := func(y0, y1 int) int {
		n := 0
		for y := y0; y < y1; y++ {
			for x := 0; x < 320; x++ {
				if with.NRGBAAt(x, y) != without.NRGBAAt(x, y) {
					n++
				}
			}
		}
		return n
	}
	assert.Positive(t, changed(295, 325), "names line")
	assert.Positive(t, changed(335, 355), "date line")
	assert.Zero(t, changed(0, 280), "above the captions")
}

func TestRender_TransparentQRShowsBackground(t *testing.T) {
	fsys := fstest.MapFS{
		"bg.svg": {Data: []byte(`<svg xmlns="http://www.w3.org/2000/svg" width="320" height="500" viewBox="0 0 320 500"><rect x="300" y="480" width="20" height="20" fill="#000000"/></svg>`)},
	}
	tpl := Template{ID: "t", Width: 320, Height: 500, Background: "bg.svg", QR: QRRect{X: 40, Y: 40, Size: 240}}
	scene := testScene(tpl)
	scene.Customization.Background = BackgroundPink
	scene.QR = solidQR(64, color.NRGBA{})

	out, err := NewCompositor(NewFSLoader(fsys)).Render(context.Background(), scene)
	require.NoError(t, err)

	assert.Equal(t, backgroundColors[BackgroundPink], out.NRGBAAt(5, 5))
	assert.Equal(t, backgroundColors[BackgroundPink], out.NRGBAAt(100, 100))
	assert.Equal(t, black, out.NRGBAAt(310, 490))
}

func TestRender_RasterBackgroundIsScaled(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, imaging.New(10, 10, red)))
	fsys := fstest.MapFS{"bg.png": {Data: buf.Bytes()}}

	tpl := Template{Width: 320, Height: 500, Background: "bg.png", QR: QRRect{X: 40, Y: 40, Size: 240}}
	out, err := NewCompositor(NewFSLoader(fsys)).Render(context.Background(), testScene(tpl))
	require.NoError(t, err)

	assert.Equal(t, red, out.NRGBAAt(5, 5))
	assert.Equal(t, red, out.NRGBAAt(315, 495))
}

func TestRender_Border(t *testing.T) {
	tpl, _ := Lookup("classic")
	scene := testScene(tpl)
	scene.Customization.Border = BorderSimple

	out, err := NewCompositor(NewEmbeddedLoader()).Render(context.Background(), scene)
	require.NoError(t, err)

	near := func(got, want color.NRGBA) bool {
		d := func(a, b uint8) int {
			if a > b {
				return int(a - b)
			}
			return int(b - a)
		}
		return d(got.R, want.R) <= 2 && d(got.G, want.G) <= 2 && d(got.B, want.B) <= 2
	}
	want := borderStyles[BorderSimple].color
	assert.True(t, near(out.NRGBAAt(1, 250), want), "left edge %v", out.NRGBAAt(1, 250))
	assert.True(t, near(out.NRGBAAt(160, 498), want), "bottom edge %v", out.NRGBAAt(160, 498))
	assert.False(t, near(out.NRGBAAt(20, 250), want), "inside the frame")
}

func TestRender_Errors(t *testing.T) {
	tpl, _ := Lookup("classic")
	cause := errors.New("asset store offline")

	_, err := NewCompositor(failingLoader{err: cause}).Render(context.Background(), testScene(tpl))
	var bgErr *BackgroundError
	require.ErrorAs(t, err, &bgErr)
	assert.Equal(t, tpl.Background, bgErr.Ref)
	assert.ErrorIs(t, err, cause)

	_, err = NewCompositor(NewFSLoader(fstest.MapFS{})).Render(context.Background(), testScene(tpl))
	assert.ErrorAs(t, err, &bgErr)

	scene := testScene(tpl)
	scene.QR = nil
	_, err = NewCompositor(NewEmbeddedLoader()).Render(context.Background(), scene)
	assert.ErrorIs(t, err, ErrNoQRImage)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = NewCompositor(NewEmbeddedLoader()).Render(ctx, testScene(tpl))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFitSize(t *testing.T) {
	f, err := fontFor(TextDefault)
	require.NoError(t, err)

	size, err := fitSize(f, "A & B", namesFontSize, 224)
	require.NoError(t, err)
	assert.Equal(t, float64(namesFontSize), size)

	long := strings.Repeat("Bartholomew ", 4) + "& " + strings.Repeat("Genevieve ", 4)
	size, err = fitSize(f, long, namesFontSize, 224)
	require.NoError(t, err)
	assert.Less(t, size, float64(namesFontSize))
}

func TestFitSize_MeasuredWidthWithinLimit(t *testing.T) {
	const maxWidth = 224
	base := strings.Repeat("Bartholomew", 11)

	for _, style := range []string{TextDefault, TextSerif, TextHandwritten} {
		f, err := fontFor(style)
		require.NoError(t, err)

		for n := 5; n < 120; n++ {
			text := base[:n] + " & " + base[:n]
			for _, start := range []float64{namesFontSize, dateFontSize} {
				size, err := fitSize(f, text, start, maxWidth)
				require.NoError(t, err)
				if size <= minFontSize {
					continue
				}
				width, err := measure(f, text, size)
				require.NoError(t, err)
				assert.LessOrEqual(t, width, maxWidth, "style=%s n=%d size=%.2f", style, n, size)
			}
		}
	}
}

func TestCustomizationNormalized(t *testing.T) {
	got := Customization{Background: "purple", Border: "", Text: "gothic", TopText: "CAPTURE the Love"}.Normalized()

	assert.Equal(t, Customization{
		Background: BackgroundWhite,
		Border:     BorderNone,
		Text:       TextDefault,
		TopText:    "CAPTURE the Love",
	}, got)
}

func TestEventDisplay(t *testing.T) {
	e := EventDisplay{Partner1Name: " Adeline ", Partner2Name: "Alexander", WeddingDate: time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)}

	assert.Equal(t, "Adeline & Alexander", e.Names())
	assert.Equal(t, "June 14, 2025", e.DateLabel())
	assert.Empty(t, EventDisplay{}.DateLabel())
}

func TestDownloadFilename(t *testing.T) {
	assert.Equal(t, "wedding-qr-abc123.png", DownloadFilename("abc123"))
}
