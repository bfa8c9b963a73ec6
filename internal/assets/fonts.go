package assets

import (
	"bytes"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	faceSourceOnce sync.Once
	faceSource     *text.GoTextFaceSource
)

// FaceSource returns the shared font source for HUD and banner text.
func FaceSource() *text.GoTextFaceSource {
	faceSourceOnce.Do(func() {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			log.Fatalf("Failed to load font: %v", err)
		}
		faceSource = src
	})
	return faceSource
}

// Face returns a face of the given pixel size.
func Face(size float64) *text.GoTextFace {
	return &text.GoTextFace{Source: FaceSource(), Size: size}
}
