package canvas

import (
	"context"
	"embed"
	"fmt"
	"image"
	"io/fs"
	"path"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

//go:embed assets/*.svg
var embeddedAssets embed.FS

// AssetLoader resolves a template background reference to an image sized
// for the surface.
type AssetLoader interface {
	Load(ctx context.Context, ref string, width, height int) (image.Image, error)
}

// FSLoader reads backgrounds from a filesystem. SVG files are rasterized at
// the requested size; other formats are decoded and left to the compositor
// to scale.
type FSLoader struct {
	fsys fs.FS
}

func NewFSLoader(fsys fs.FS) *FSLoader {
	return &FSLoader{fsys: fsys}
}

// NewEmbeddedLoader serves the template art compiled into the binary.
func NewEmbeddedLoader() *FSLoader {
	return NewFSLoader(embeddedAssets)
}

func (l *FSLoader) Load(ctx context.Context, ref string, width, height int) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if ref == "" {
		return nil, fmt.Errorf("empty background reference")
	}

	f, err := l.fsys.Open(ref)
	if err != nil {
		return nil, fmt.Errorf("open background %q: %w", ref, err)
	}
	defer f.Close()

	if strings.EqualFold(path.Ext(ref), ".svg") {
		icon, err := oksvg.ReadIconStream(f)
		if err != nil {
			return nil, fmt.Errorf("parse svg %q: %w", ref, err)
		}
		icon.SetTarget(0, 0, float64(width), float64(height))

		img := image.NewRGBA(image.Rect(0, 0, width, height))
		scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
		icon.Draw(rasterx.NewDasher(width, height, scanner), 1.0)
		return img, nil
	}

	img, err := imaging.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode background %q: %w", ref, err)
	}
	return img, nil
}
