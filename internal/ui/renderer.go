package ui

import (
	"image"
	"image/color"

	"github.com/hailam/chessboard/internal/board"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Theme defines the color scheme for the board.
type Theme struct {
	LightSquare    color.RGBA
	DarkSquare     color.RGBA
	SelectedSquare color.RGBA
	LegalMoveColor color.RGBA
	CheckColor     color.RGBA
	Background     color.RGBA
	LabelOnLight   color.RGBA
	LabelOnDark    color.RGBA
	BannerColor    color.RGBA
	BannerText     color.RGBA
}

// DefaultTheme returns the default color theme.
func DefaultTheme() *Theme {
	return &Theme{
		LightSquare:    color.RGBA{240, 217, 181, 255}, // Tan
		DarkSquare:     color.RGBA{181, 136, 99, 255},  // Brown
		SelectedSquare: color.RGBA{247, 247, 105, 180}, // Yellow highlight
		LegalMoveColor: color.RGBA{130, 151, 105, 200}, // Green dots
		CheckColor:     color.RGBA{255, 100, 100, 180}, // Red
		Background:     color.RGBA{40, 44, 52, 255},    // Dark gray
		LabelOnLight:   color.RGBA{181, 136, 99, 255},
		LabelOnDark:    color.RGBA{240, 217, 181, 255},
		BannerColor:    color.RGBA{20, 22, 26, 170},
		BannerText:     color.RGBA{250, 250, 250, 255},
	}
}

// Renderer draws a board.View. Board pixel space has its origin at the
// bottom-left corner; the renderer flips it so row 1 is at the bottom of
// the window.
type Renderer struct {
	sprites *SpriteManager
	frost   *Frost
	theme   *Theme
	length  float64 // Square edge in logical pixels
	size    float64 // Board edge in logical pixels
	scale   float64 // HiDPI scale factor
}

// NewRenderer creates a renderer for squares of the given edge length.
func NewRenderer(length float64) *Renderer {
	return &Renderer{
		sprites: NewSpriteManager(int(length)),
		frost:   NewFrost(),
		theme:   DefaultTheme(),
		length:  length,
		size:    length * board.Columns,
		scale:   1.0,
	}
}

// SetScale sets the HiDPI scale factor for rendering.
func (r *Renderer) SetScale(scale float64) {
	r.scale = scale
}

// sf returns the scaled value for rendering.
func (r *Renderer) sf(v float64) float32 {
	return float32(v * r.scale)
}

// SquareToScreen converts a square to the logical screen position of its
// top-left corner.
func (r *Renderer) SquareToScreen(v board.View, sq board.Square) (x, y float64) {
	bx, by := v.Position(sq)
	return bx, r.size - by - r.length
}

// DrawBoard draws the squares in their shades.
func (r *Renderer) DrawBoard(screen *ebiten.Image, v board.View) {
	for _, sq := range v.Squares() {
		c := r.theme.LightSquare
		if sq.Shade() == board.Dark {
			c = r.theme.DarkSquare
		}
		r.fillSquare(screen, v, sq, c)
	}
}

// DrawHighlights draws the selected square, the legal destinations and a
// king in check.
func (r *Renderer) DrawHighlights(screen *ebiten.Image, v board.View, checked board.Square) {
	if checked != board.NoSquare {
		r.fillSquare(screen, v, checked, r.theme.CheckColor)
	}

	if sq := v.Selected(); sq != board.NoSquare {
		r.fillSquare(screen, v, sq, r.theme.SelectedSquare)
	}

	v.LegalMoves().ForEach(func(sq board.Square) {
		x, y := r.SquareToScreen(v, sq)
		cx := r.sf(x + r.length/2)
		cy := r.sf(y + r.length/2)
		radius := r.sf(r.length * 0.15)
		if v.PieceAt(sq) != board.NoPiece {
			// Ring around capturable pieces
			vector.StrokeCircle(screen, cx, cy, r.sf(r.length*0.45), r.sf(r.length*0.06), r.theme.LegalMoveColor, true)
			return
		}
		vector.DrawFilledCircle(screen, cx, cy, radius, r.theme.LegalMoveColor, true)
	})
}

// fillSquare draws a colored rectangle over a square.
func (r *Renderer) fillSquare(screen *ebiten.Image, v board.View, sq board.Square, c color.RGBA) {
	x, y := r.SquareToScreen(v, sq)
	vector.DrawFilledRect(screen, r.sf(x), r.sf(y), r.sf(r.length), r.sf(r.length), c, false)
}

// DrawPieces draws every piece on its square.
func (r *Renderer) DrawPieces(screen *ebiten.Image, v board.View) {
	for sq, p := range v.Pieces() {
		x, y := r.SquareToScreen(v, sq)
		r.sprites.DrawPieceAt(screen, p, float64(r.sf(x)), float64(r.sf(y)), r.scale)
	}
}

// DrawLabels writes column letters along row 1 and row numbers along
// column 1, in the opposite shade of the square they sit on.
func (r *Renderer) DrawLabels(screen *ebiten.Image, v board.View) {
	face := scaledFace(labelFace, r.scale)
	if face == nil {
		return
	}
	pad := r.length * 0.06

	for _, sq := range v.Squares() {
		x, y := r.SquareToScreen(v, sq)
		c := r.theme.LabelOnLight
		if sq.Shade() == board.Dark {
			c = r.theme.LabelOnDark
		}

		if sq.Column() == 1 {
			label := string(rune('0' + sq.Row()))
			r.drawText(screen, label, face, x+pad, y+pad, c)
		}
		if sq.Row() == 1 {
			label := string(rune('a' + sq.Column() - 1))
			w, h := MeasureText(label, face)
			r.drawText(screen, label, face, x+r.length-pad-w/r.scale, y+r.length-pad-h/r.scale, c)
		}
	}
}

// DrawBanner frosts a strip across the middle of the board and centers
// msg on it.
func (r *Renderer) DrawBanner(screen *ebiten.Image, msg string) {
	face := scaledFace(bannerFace, r.scale)
	if face == nil {
		return
	}
	w, h := MeasureText(msg, face)
	padding := 16.0 * r.scale
	size := float64(r.sf(r.size))

	stripH := h + padding*2
	top := size/2 - stripH/2
	strip := image.Rect(0, int(top), int(size), int(top+stripH))
	r.frost.Draw(screen, strip, r.theme.BannerColor, 2.5*r.scale)

	op := &text.DrawOptions{}
	op.GeoM.Translate(size/2-w/2, top+padding)
	op.ColorScale.ScaleWithColor(r.theme.BannerText)
	text.Draw(screen, msg, face, op)
}

// drawText draws s at logical position (x, y).
func (r *Renderer) drawText(screen *ebiten.Image, s string, face *text.GoTextFace, x, y float64, c color.RGBA) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(r.sf(x)), float64(r.sf(y)))
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}

// Size returns the board edge in logical pixels.
func (r *Renderer) Size() float64 {
	return r.size
}

// Theme returns the current theme.
func (r *Renderer) Theme() *Theme {
	return r.theme
}
