package canvas

import (
	"image"
	"image/color"
	"strings"
	"time"
)

// Style choices offered to the couple while previewing a template.
const (
	BackgroundWhite = "white"
	BackgroundPink  = "pink"
	BackgroundBlue  = "blue"

	BorderNone   = "none"
	BorderSimple = "simple"
	BorderFloral = "floral"

	TextDefault     = "default"
	TextSerif       = "serif"
	TextHandwritten = "handwritten"
)

var backgroundColors = map[string]color.NRGBA{
	BackgroundWhite: {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	BackgroundPink:  {R: 0xfc, G: 0xe7, B: 0xf3, A: 0xff},
	BackgroundBlue:  {R: 0xe0, G: 0xf2, B: 0xfe, A: 0xff},
}

type borderStyle struct {
	width int
	color color.NRGBA
}

var borderStyles = map[string]borderStyle{
	BorderNone:   {},
	BorderSimple: {width: 4, color: color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}},
	BorderFloral: {width: 8, color: color.NRGBA{R: 0xfd, G: 0xa4, B: 0xaf, A: 0xff}},
}

// Customization is the per-preview styling. TopText and BottomText are
// carried through but not drawn.
type Customization struct {
	Background string `json:"background"`
	Border     string `json:"border"`
	Text       string `json:"text"`
	TopText    string `json:"top_text,omitempty"`
	BottomText string `json:"bottom_text,omitempty"`
}

// Normalized replaces unknown or empty choices with the defaults.
func (c Customization) Normalized() Customization {
	if _, ok := backgroundColors[c.Background]; !ok {
		c.Background = BackgroundWhite
	}
	if _, ok := borderStyles[c.Border]; !ok {
		c.Border = BorderNone
	}
	if _, ok := faceSources[c.Text]; !ok {
		c.Text = TextDefault
	}
	return c
}

// EventDisplay is the subset of an event shown on the card.
type EventDisplay struct {
	Partner1Name string
	Partner2Name string
	WeddingDate  time.Time
}

func (e EventDisplay) Names() string {
	return strings.TrimSpace(e.Partner1Name) + " & " + strings.TrimSpace(e.Partner2Name)
}

func (e EventDisplay) DateLabel() string {
	if e.WeddingDate.IsZero() {
		return ""
	}
	return e.WeddingDate.Format("January 2, 2006")
}

// Scene holds everything one render needs. It is built per request and
// discarded afterwards.
type Scene struct {
	Template      Template
	Customization Customization
	Event         EventDisplay
	QR            image.Image
}

// Layout is the resolved geometry of a template.
type Layout struct {
	Surface      image.Rectangle
	QR           image.Rectangle
	CenterX      int
	NamesY       int
	DateY        int
	MaxTextWidth int
}

const (
	namesOffset = 30
	dateOffset  = 35
)

// ComputeLayout places the captions under the QR rectangle: the names line
// 30 units below its bottom edge and the date 35 units below that, both
// centred on the QR code and limited to 70% of the surface width.
func ComputeLayout(t Template) Layout {
	w, h := t.Width, t.Height
	if w <= 0 {
		w = DefaultWidth
	}
	if h <= 0 {
		h = DefaultHeight
	}
	size := t.QR.EffectiveSize()

	l := Layout{
		Surface:      image.Rect(0, 0, w, h),
		QR:           image.Rect(t.QR.X, t.QR.Y, t.QR.X+size, t.QR.Y+size),
		CenterX:      t.QR.X + size/2,
		MaxTextWidth: w * 7 / 10,
	}
	l.NamesY = l.QR.Max.Y + namesOffset
	l.DateY = l.NamesY + dateOffset
	return l
}
