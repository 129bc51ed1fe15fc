// Package ui implements the board window using Ebitengine.
package ui

import (
	"fmt"
	"image"
	"strings"

	"github.com/apex/log"
	"github.com/hailam/chessboard/internal/board"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// pieceOutlines holds one silhouette per kind on a 45x45 canvas.
var pieceOutlines = [board.NoKind]string{
	board.Pawn: "M 22.5,9 C 19.5,9 17.5,11.5 17.5,14 C 17.5,16 18.5,17.5 20,18.5 " +
		"C 17,20 15,23 15,27 L 13,36 L 32,36 L 30,27 C 30,23 28,20 25,18.5 " +
		"C 26.5,17.5 27.5,16 27.5,14 C 27.5,11.5 25.5,9 22.5,9 Z",
	board.Knight: "M 12,36 L 33,36 C 33,28 32,20 28,14 C 26,11 23,10 21,10 L 19,7 L 17,11 " +
		"C 14,13 11,17 10,22 C 9.5,24 11,25.5 13,25 L 17,22 C 19,22 21,21 22,19 " +
		"C 22,23 18,27 16,31 Z",
	board.Bishop: "M 22.5,7 C 21,7 20,8 20,9.5 C 20,10.5 20.5,11 21,11.5 C 17,14 14,18 14,23 " +
		"C 14,26 16,28 18,29 L 16,36 L 29,36 L 27,29 C 29,28 31,26 31,23 " +
		"C 31,18 28,14 24,11.5 C 24.5,11 25,10.5 25,9.5 C 25,8 24,7 22.5,7 Z",
	board.Rook: "M 11,36 L 34,36 L 34,32 L 31,29 L 31,17 L 33,14 L 33,9 L 29,9 L 29,11 " +
		"L 25,11 L 25,9 L 20,9 L 20,11 L 16,11 L 16,9 L 12,9 L 12,14 L 14,17 " +
		"L 14,29 L 11,32 Z",
	board.Queen: "M 9,14 L 13,28 L 12,36 L 33,36 L 32,28 L 36,14 L 29,24 L 27,11 " +
		"L 22.5,23 L 18,11 L 16,24 Z",
	board.King: "M 21,5 L 24,5 L 24,9 L 27,9 L 27,12 L 24,12 L 24,16 C 30,16 34,19 34,24 " +
		"C 34,28 31,30 30,31 L 31,36 L 14,36 L 15,31 C 14,30 11,28 11,24 " +
		"C 11,19 15,16 21,16 L 21,12 L 18,12 L 18,9 L 21,9 Z",
}

// pieceColors holds fill and stroke per side.
var pieceColors = [board.NoSide][2]string{
	board.White: {"#ffffff", "#000000"},
	board.Black: {"#262626", "#000000"},
}

// pieceSVG returns the SVG document for p.
func pieceSVG(p board.Piece) string {
	colors := pieceColors[p.Side()]
	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="45" height="45" viewBox="0 0 45 45">`+
		`<path d="%s" fill="%s" stroke="%s" stroke-width="1.5" stroke-linejoin="round"/></svg>`,
		pieceOutlines[p.Kind()], colors[0], colors[1])
}

// rasterizePiece renders p into a size x size RGBA image.
func rasterizePiece(p board.Piece, size int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(strings.NewReader(pieceSVG(p)))
	if err != nil {
		return nil, fmt.Errorf("parse %v sprite: %w", p, err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)
	return rgba, nil
}

// SpriteManager manages piece sprites.
type SpriteManager struct {
	pieces      map[board.Piece]*ebiten.Image
	size        int     // Display size in logical pixels
	renderScale float64 // Render at higher resolution for quality (e.g., 3.0)
}

// NewSpriteManager creates a new sprite manager with pieces of the given size.
func NewSpriteManager(size int) *SpriteManager {
	sm := &SpriteManager{
		pieces:      make(map[board.Piece]*ebiten.Image),
		size:        size,
		renderScale: 3.0,
	}
	sm.loadPieces()
	return sm
}

// loadPieces rasterizes every piece at the render resolution.
func (sm *SpriteManager) loadPieces() {
	renderSize := int(float64(sm.size) * sm.renderScale)

	for p := board.WhitePawn; p < board.NoPiece; p++ {
		rgba, err := rasterizePiece(p, renderSize)
		if err != nil {
			log.WithError(err).WithField("piece", p.String()).Warn("skipping sprite")
			continue
		}
		sm.pieces[p] = ebiten.NewImageFromImage(rgba)
	}
}

// DrawPieceAt draws a piece with its top-left corner at the given device pixel.
// scale is the HiDPI factor applied on top of the display size.
func (sm *SpriteManager) DrawPieceAt(screen *ebiten.Image, p board.Piece, x, y, scale float64) {
	sprite := sm.pieces[p]
	if sprite == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	s := scale / sm.renderScale
	op.GeoM.Scale(s, s)
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(sprite, op)
}
