package ui

import (
	"image"
	"image/color"

	"github.com/apex/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// Kage shader for Gaussian blur along Dir.
// Uses 9-tap Gaussian kernel (fixed size for Kage compatibility)
var blurShader = []byte(`
//kage:unit pixels

package main

var Sigma float // Controls blur strength (pixel spread)
var Dir vec2    // (1, 0) horizontal, (0, 1) vertical

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
    step := Dir * Sigma
    var result vec4

    result += imageSrc0At(srcPos - 4*step) * 0.0162
    result += imageSrc0At(srcPos - 3*step) * 0.0540
    result += imageSrc0At(srcPos - 2*step) * 0.1218
    result += imageSrc0At(srcPos - step) * 0.1954
    result += imageSrc0At(srcPos) * 0.2252
    result += imageSrc0At(srcPos + step) * 0.1954
    result += imageSrc0At(srcPos + 2*step) * 0.1218
    result += imageSrc0At(srcPos + 3*step) * 0.0540
    result += imageSrc0At(srcPos + 4*step) * 0.0162

    return result
}
`)

// Kage shader mixing the blurred region with a tint color
var tintShader = []byte(`
//kage:unit pixels

package main

var Tint vec4

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
    blurred := imageSrc0At(srcPos)
    return mix(blurred, vec4(Tint.rgb, 1.0), Tint.a)
}
`)

// Frost draws a blurred, tinted copy of a screen region over itself.
// It backs the end-of-game banner so the final position stays visible.
type Frost struct {
	blur    *ebiten.Shader
	tint    *ebiten.Shader
	tempA   *ebiten.Image
	tempB   *ebiten.Image
	enabled bool
}

// NewFrost compiles the shaders. When compilation fails the effect falls
// back to a flat translucent fill.
func NewFrost() *Frost {
	f := &Frost{enabled: true}

	var err error
	f.blur, err = ebiten.NewShader(blurShader)
	if err != nil {
		log.WithError(err).Warn("blur shader unavailable")
		f.enabled = false
		return f
	}

	f.tint, err = ebiten.NewShader(tintShader)
	if err != nil {
		log.WithError(err).Warn("tint shader unavailable")
		f.enabled = false
	}
	return f
}

// ensureImages creates or resizes offscreen images as needed
func (f *Frost) ensureImages(w, h int) {
	if f.tempA == nil || f.tempA.Bounds().Dx() != w || f.tempA.Bounds().Dy() != h {
		f.tempA = ebiten.NewImage(w, h)
	}
	if f.tempB == nil || f.tempB.Bounds().Dx() != w || f.tempB.Bounds().Dy() != h {
		f.tempB = ebiten.NewImage(w, h)
	}
}

// Draw frosts rect, given in device pixels.
// sigma controls blur strength (1.0-4.0 recommended)
func (f *Frost) Draw(screen *ebiten.Image, rect image.Rectangle, tint color.RGBA, sigma float64) {
	w, h := rect.Dx(), rect.Dy()
	if w <= 0 || h <= 0 {
		return
	}
	if f == nil || !f.enabled {
		f.drawFallback(screen, rect, tint)
		return
	}

	f.ensureImages(w, h)

	// Capture the region from screen
	f.tempA.Clear()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(-rect.Min.X), float64(-rect.Min.Y))
	f.tempA.DrawImage(screen, op)

	// Horizontal then vertical pass
	f.pass(f.tempB, f.tempA, sigma, 1, 0)
	f.pass(f.tempA, f.tempB, sigma, 0, 1)

	tintOp := &ebiten.DrawRectShaderOptions{
		Uniforms: map[string]interface{}{
			"Tint": []float32{
				float32(tint.R) / 255.0,
				float32(tint.G) / 255.0,
				float32(tint.B) / 255.0,
				float32(tint.A) / 255.0,
			},
		},
		Images: [4]*ebiten.Image{f.tempA},
	}
	tintOp.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	screen.DrawRectShader(w, h, f.tint, tintOp)
}

// pass blurs src into dst along (dx, dy).
func (f *Frost) pass(dst, src *ebiten.Image, sigma float64, dx, dy float32) {
	dst.Clear()
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	op := &ebiten.DrawRectShaderOptions{
		Uniforms: map[string]interface{}{
			"Sigma": float32(sigma),
			"Dir":   []float32{dx, dy},
		},
		Images: [4]*ebiten.Image{src},
	}
	dst.DrawRectShader(w, h, f.blur, op)
}

// drawFallback draws a simple semi-transparent overlay when shaders are unavailable
func (f *Frost) drawFallback(screen *ebiten.Image, rect image.Rectangle, tint color.RGBA) {
	fallback := ebiten.NewImage(rect.Dx(), rect.Dy())
	fallback.Fill(tint)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	screen.DrawImage(fallback, op)
}
