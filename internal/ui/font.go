package ui

import (
	"bytes"

	"github.com/apex/log"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	// Font faces for labels and the end-of-game banner
	labelFace  *text.GoTextFace
	bannerFace *text.GoTextFace
)

const (
	labelFontSize  = 12.0
	bannerFontSize = 28.0
)

func init() {
	initFonts()
}

func initFonts() {
	regularSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.WithError(err).Warn("failed to load regular font")
		return
	}
	labelFace = &text.GoTextFace{
		Source: regularSource,
		Size:   labelFontSize,
	}

	boldSource, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		log.WithError(err).Warn("failed to load bold font")
		return
	}
	bannerFace = &text.GoTextFace{
		Source: boldSource,
		Size:   bannerFontSize,
	}
}

// scaledFace returns face resized by the HiDPI scale factor.
func scaledFace(face *text.GoTextFace, scale float64) *text.GoTextFace {
	if face == nil {
		return nil
	}
	return &text.GoTextFace{
		Source: face.Source,
		Size:   face.Size * scale,
	}
}

// MeasureText returns the width and height of the given text.
func MeasureText(s string, face *text.GoTextFace) (width, height float64) {
	if face == nil {
		return 0, 0
	}
	return text.Measure(s, face, 0)
}
