package render

import (
	"fmt"
	"math"
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Faces caches sized faces of one font.
type Faces struct {
	font  *opentype.Font
	cache sync.Map // map[float64]font.Face
}

var (
	defaultFacesOnce sync.Once
	defaultFaces     *Faces
)

// DefaultFaces returns faces for the bundled Go Regular font.
func DefaultFaces() *Faces {
	defaultFacesOnce.Do(func() {
		f, err := opentype.Parse(goregular.TTF)
		if err != nil {
			panic(fmt.Sprintf("parse goregular: %v", err))
		}
		defaultFaces = &Faces{font: f}
	})
	return defaultFaces
}

// LoadFaces reads a TrueType or OpenType font, or the first font of a
// collection, from path.
func LoadFaces(path string) (*Faces, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font %s: %w", path, err)
	}
	f, err := opentype.Parse(data)
	if err != nil {
		coll, cerr := opentype.ParseCollection(data)
		if cerr != nil {
			return nil, fmt.Errorf("parse font %s: %w", path, err)
		}
		if f, err = coll.Font(0); err != nil {
			return nil, fmt.Errorf("font %s: %w", path, err)
		}
	}
	return &Faces{font: f}, nil
}

// Face returns a face at size pixels. Sizes are rounded to the nearest half
// pixel before caching.
func (f *Faces) Face(size float64) (font.Face, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid font size %v", size)
	}
	size = math.Round(size*2) / 2
	if face, ok := f.cache.Load(size); ok {
		return face.(font.Face), nil
	}
	face, err := opentype.NewFace(f.font, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, err
	}
	actual, _ := f.cache.LoadOrStore(size, face)
	return actual.(font.Face), nil
}
