package canvas

const (
	DefaultWidth      = 320
	DefaultHeight     = 500
	DefaultQRSize     = 240
	DefaultTemplateID = "classic"
)

// QRRect is the square the QR code is drawn into. Size 0 means DefaultQRSize.
type QRRect struct {
	X    int `json:"x"`
	Y    int `json:"y"`
	Size int `json:"size,omitempty"`
}

func (r QRRect) EffectiveSize() int {
	if r.Size <= 0 {
		return DefaultQRSize
	}
	return r.Size
}

type Template struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Background  string `json:"background"`
	QR          QRRect `json:"qr"`
	// Captions enables the names and date lines under the QR code.
	Captions bool `json:"captions"`
}

var templates = []Template{
	{ID: "classic", Name: "Classic", Description: "Elegant and timeless", Background: "assets/classic.svg"},
	{ID: "modern", Name: "Modern", Description: "Clean and minimal", Background: "assets/modern.svg"},
	{ID: "floral", Name: "Floral", Description: "Romantic and decorative", Background: "assets/floral.svg"},
	{ID: "template1", Name: "Template 1", Description: "Gold frame", Background: "assets/template1.svg"},
	{ID: "template2", Name: "Template 2", Description: "Lavender wave", Background: "assets/template2.svg"},
	{ID: "template3", Name: "Template 3", Description: "Garden green", Background: "assets/template3.svg"},
}

func init() {
	for i := range templates {
		templates[i].Width = DefaultWidth
		templates[i].Height = DefaultHeight
		templates[i].QR = QRRect{X: 40, Y: 40, Size: DefaultQRSize}
		templates[i].Captions = true
	}
}

// Lookup returns the template with the given id.
func Lookup(id string) (Template, bool) {
	for _, t := range templates {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}

// LookupOrDefault falls back to the classic template for unknown ids.
func LookupOrDefault(id string) Template {
	if t, ok := Lookup(id); ok {
		return t
	}
	t, _ := Lookup(DefaultTemplateID)
	return t
}

// Templates returns a copy of the catalog in display order.
func Templates() []Template {
	out := make([]Template, len(templates))
	copy(out, templates)
	return out
}
